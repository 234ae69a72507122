package bancore

import (
	"fmt"
	"time"
)

// LedgerService implements every account operation of the bank. Each
// operation loads the full account collection, validates, mutates the
// relevant accounts in memory, and persists the whole collection before
// returning; a failed validation performs no mutation and no persistence.
//
// Successful mutating operations return a fresh deep snapshot of the
// account, never a reference into the stored collection: there is no ambient
// "current user" state, callers re-authenticate or pass the CPF explicitly.
type LedgerService struct {
	store  AccountStore
	market *MarketData
	now    func() time.Time
}

// NewLedgerService wires the service to its store and market data provider.
func NewLedgerService(store AccountStore, market *MarketData) *LedgerService {
	return &LedgerService{store: store, market: market, now: time.Now}
}

// Market exposes the provider for read-only rendering (quotes, calendar).
func (s *LedgerService) Market() *MarketData { return s.market }

// find locates an account by CPF in a loaded collection. The input is
// normalized first, so raw and punctuated forms address the same account
// whatever operation they reach.
func find(accounts []*Account, cpf string) *Account {
	cpf = NormalizeCPF(cpf)
	for _, a := range accounts {
		if a.CPF == cpf {
			return a
		}
	}
	return nil
}

// stamp returns the operation timestamp.
func (s *LedgerService) stamp() Timestamp { return NewTimestamp(s.now()) }

// Register creates a new account with a zero balance.
// It fails with ErrInvalidIdentity when the CPF does not validate, and with
// ErrDuplicateIdentity when the normalized CPF is already registered.
func (s *LedgerService) Register(name, rawCPF, password string) (*Account, error) {
	cpf := NormalizeCPF(rawCPF)
	if !ValidCPF(cpf) {
		return nil, fmt.Errorf("registering %q: %w", rawCPF, ErrInvalidIdentity)
	}

	accounts, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}
	if find(accounts, cpf) != nil {
		return nil, fmt.Errorf("registering %q: %w", cpf, ErrDuplicateIdentity)
	}

	account := NewAccount(name, cpf, password)
	accounts = append(accounts, account)
	if err := s.store.SaveAll(accounts); err != nil {
		return nil, err
	}
	return account.snapshot(), nil
}

// Authenticate returns the account matching the CPF and password pair, or
// ErrInvalidCredentials. The password is an opaque exact comparison.
func (s *LedgerService) Authenticate(rawCPF, password string) (*Account, error) {
	accounts, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}
	account := find(accounts, rawCPF)
	if account == nil || account.Password != password {
		return nil, ErrInvalidCredentials
	}
	return account.snapshot(), nil
}

// Lookup returns a snapshot of the account with that CPF, for pre-checks and
// read-only rendering. It takes no credential, so a miss is
// ErrAccountNotFound, never a credential error.
func (s *LedgerService) Lookup(cpf string) (*Account, error) {
	accounts, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}
	account := find(accounts, cpf)
	if account == nil {
		return nil, fmt.Errorf("looking up %q: %w", cpf, ErrAccountNotFound)
	}
	return account.snapshot(), nil
}

// AdjustBalance is the balance mutation primitive: it adds the signed amount
// (positive deposit, negative withdrawal) and records a statement entry of
// the given kind. It does not enforce a non-negative balance; callers such
// as Withdraw, Transfer and Buy pre-validate funds.
func (s *LedgerService) AdjustBalance(cpf string, amount Money, kind Kind) (*Account, error) {
	accounts, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}
	account := find(accounts, cpf)
	if account == nil {
		return nil, ErrAccountNotFound
	}

	account.Balance = account.Balance.Add(amount)
	account.record(NewTransaction(s.stamp(), kind, amount, ""))
	if err := s.store.SaveAll(accounts); err != nil {
		return nil, err
	}
	return account.snapshot(), nil
}

// Deposit credits a positive amount to the account balance.
func (s *LedgerService) Deposit(cpf string, amount Money) (*Account, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("deposit of %s: %w", amount, ErrInvalidAmount)
	}
	return s.AdjustBalance(cpf, amount, KindDeposit)
}

// Withdraw debits a positive amount, rejecting any withdrawal that would
// drive the balance negative.
func (s *LedgerService) Withdraw(cpf string, amount Money) (*Account, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("withdrawal of %s: %w", amount, ErrInvalidAmount)
	}

	account, err := s.Lookup(cpf)
	if err != nil {
		return nil, err
	}
	if account.Balance.LessThan(amount) {
		return nil, fmt.Errorf("withdrawing %s with balance %s: %w", amount, account.Balance, ErrInsufficientFunds)
	}
	return s.AdjustBalance(cpf, amount.Neg(), KindWithdrawal)
}

// Transfer moves amount from sender to recipient in a single durable write.
// Both statement entries (transfer-sent, negative; transfer-received,
// positive) are persisted together, so the summed balance of the two
// accounts is conserved.
func (s *LedgerService) Transfer(senderCPF, rawRecipient string, amount Money) (*Account, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("transfer of %s: %w", amount, ErrInvalidAmount)
	}

	accounts, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}
	sender := find(accounts, senderCPF)
	if sender == nil {
		return nil, ErrAccountNotFound
	}
	recipient := find(accounts, rawRecipient)
	if recipient == nil {
		return nil, fmt.Errorf("transfer to %q: %w", rawRecipient, ErrRecipientNotFound)
	}
	if sender.CPF == recipient.CPF {
		return nil, ErrSelfTransfer
	}
	if sender.Balance.LessThan(amount) {
		return nil, fmt.Errorf("transferring %s with balance %s: %w", amount, sender.Balance, ErrInsufficientFunds)
	}

	at := s.stamp()
	sender.Balance = sender.Balance.Sub(amount)
	recipient.Balance = recipient.Balance.Add(amount)
	sender.record(NewTransaction(at, KindTransferSent, amount.Neg(), "to "+recipient.Name))
	recipient.record(NewTransaction(at, KindTransferReceived, amount, "from "+sender.Name))

	if err := s.store.SaveAll(accounts); err != nil {
		return nil, err
	}
	return sender.snapshot(), nil
}

// Buy purchases qty shares of ticker at unitPrice each. The total is debited
// from the balance and folded into the position's weighted average cost.
func (s *LedgerService) Buy(cpf, ticker string, qty Quantity, unitPrice Money) (*Account, error) {
	if err := validTrade(qty, unitPrice); err != nil {
		return nil, err
	}
	if !s.market.Has(ticker) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTicker, ticker)
	}

	accounts, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}
	account := find(accounts, cpf)
	if account == nil {
		return nil, ErrAccountNotFound
	}

	total := unitPrice.Mul(qty)
	if account.Balance.LessThan(total) {
		return nil, fmt.Errorf("buying %sx %s for %s with balance %s: %w",
			qty, ticker, total, account.Balance, ErrInsufficientFunds)
	}

	account.Balance = account.Balance.Sub(total)
	account.acquire(ticker, qty, total)
	account.record(NewTransaction(s.stamp(), KindInvestment, total.Neg(),
		fmt.Sprintf("buy %sx %s", qty, ticker)))

	if err := s.store.SaveAll(accounts); err != nil {
		return nil, err
	}
	return account.snapshot(), nil
}

// Sell disposes of qty shares of ticker at unitPrice each. The proceeds are
// credited; the average cost is untouched and the position is removed when
// it reaches zero.
func (s *LedgerService) Sell(cpf, ticker string, qty Quantity, unitPrice Money) (*Account, error) {
	if err := validTrade(qty, unitPrice); err != nil {
		return nil, err
	}

	accounts, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}
	account := find(accounts, cpf)
	if account == nil {
		return nil, ErrAccountNotFound
	}

	pos, held := account.Position(ticker)
	if !held || pos.Quantity.LessThan(qty) {
		return nil, fmt.Errorf("selling %sx %s: %w", qty, ticker, ErrInsufficientHoldings)
	}

	total := unitPrice.Mul(qty)
	account.Balance = account.Balance.Add(total)
	account.dispose(ticker, qty)
	account.record(NewTransaction(s.stamp(), KindDivestment, total,
		fmt.Sprintf("sell %sx %s", qty, ticker)))

	if err := s.store.SaveAll(accounts); err != nil {
		return nil, err
	}
	return account.snapshot(), nil
}

// validTrade checks the boundary conditions shared by Buy and Sell: a
// positive whole quantity and a positive unit price.
func validTrade(qty Quantity, unitPrice Money) error {
	if !qty.IsPositive() || !qty.IsInteger() {
		return fmt.Errorf("quantity %s: %w", qty, ErrInvalidAmount)
	}
	if !unitPrice.IsPositive() {
		return fmt.Errorf("unit price %s: %w", unitPrice, ErrInvalidAmount)
	}
	return nil
}

// DividendPayment is one credited dividend of a settlement.
type DividendPayment struct {
	Ticker string
	Amount Money
}

// Settlement is the outcome of SettleDividends: the per-ticker breakdown,
// the aggregate total, and the refreshed account snapshot.
type Settlement struct {
	Account  *Account
	Total    Money
	Payments []DividendPayment
}

// SettleDividends credits every due, unclaimed dividend for the account's
// holdings: schedule entries whose payment date is today or earlier and
// whose claim key (ticker + payment date) is not recorded yet. The claim key
// makes the operation idempotent: a second call for the same day pays zero.
// The collection is persisted only when at least one payment was made.
func (s *LedgerService) SettleDividends(cpf string) (*Settlement, error) {
	accounts, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}
	account := find(accounts, cpf)
	if account == nil {
		return nil, ErrAccountNotFound
	}

	today := DateOf(s.now())
	schedule := s.market.DividendSchedule()
	settlement := &Settlement{Total: BRL(0)}

	for _, ticker := range account.Tickers() {
		entry, scheduled := schedule[ticker]
		if !scheduled || entry.PaymentDate.After(today) {
			continue
		}
		pos, _ := account.Position(ticker)
		if !pos.Quantity.IsPositive() {
			continue
		}
		key := claimKey(ticker, entry.PaymentDate)
		if account.claimed(key) {
			continue
		}

		paid := entry.PerShare.Mul(pos.Quantity)
		account.Balance = account.Balance.Add(paid)
		account.claim(key)
		account.record(NewTransaction(s.stamp(), KindDividend, paid, ticker))

		settlement.Total = settlement.Total.Add(paid)
		settlement.Payments = append(settlement.Payments, DividendPayment{Ticker: ticker, Amount: paid})
	}

	if len(settlement.Payments) > 0 {
		if err := s.store.SaveAll(accounts); err != nil {
			return nil, err
		}
	}
	settlement.Account = account.snapshot()
	return settlement, nil
}
