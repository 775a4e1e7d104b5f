package ledger

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/entity"
)

// Book owns every collection the ledger touches and is the only writer of
// Account.Balance and Customer.Balance. All operations run under one mutex,
// so the transaction, account and customer collections are never observable
// in a torn state. Durability is delegated to the Persister and is strictly
// best-effort: the in-memory state is authoritative and never rolled back.
type Book struct {
	mu sync.Mutex

	accounts     map[uuid.UUID]*entity.Account
	customers    map[uuid.UUID]*entity.Customer
	transactions map[uuid.UUID]*entity.Transaction
	txOrder      []uuid.UUID // newest first
	contracts    map[uuid.UUID]*entity.Contract
	purchases    map[uuid.UUID]*entity.Purchase
	items        map[uuid.UUID]*entity.InventoryItem
	employees    map[uuid.UUID]*entity.Employee
	bills        map[uuid.UUID]*entity.RecurringBill

	persist Persister
	now     func() time.Time
	newID   func() uuid.UUID
}

// Option configures a Book
type Option func(*Book)

// WithPersister sets the durable store the book hands its mutations to
func WithPersister(p Persister) Option {
	return func(b *Book) { b.persist = p }
}

// WithClock overrides the timestamp source (tests)
func WithClock(now func() time.Time) Option {
	return func(b *Book) { b.now = now }
}

// WithIDSource overrides the id source (tests)
func WithIDSource(newID func() uuid.UUID) Option {
	return func(b *Book) { b.newID = newID }
}

// New creates an empty book
func New(opts ...Option) *Book {
	b := &Book{
		accounts:     make(map[uuid.UUID]*entity.Account),
		customers:    make(map[uuid.UUID]*entity.Customer),
		transactions: make(map[uuid.UUID]*entity.Transaction),
		contracts:    make(map[uuid.UUID]*entity.Contract),
		purchases:    make(map[uuid.UUID]*entity.Purchase),
		items:        make(map[uuid.UUID]*entity.InventoryItem),
		employees:    make(map[uuid.UUID]*entity.Employee),
		bills:        make(map[uuid.UUID]*entity.RecurringBill),
		persist:      NopPersister{},
		now:          time.Now,
		newID:        uuid.New,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Snapshot is the full ledger state as loaded from (or handed to) the
// durable store.
type Snapshot struct {
	Accounts     []entity.Account
	Customers    []entity.Customer
	Transactions []entity.Transaction
	Contracts    []entity.Contract
	Purchases    []entity.Purchase
	Items        []entity.InventoryItem
	Employees    []entity.Employee
	Bills        []entity.RecurringBill
}

// Load replaces the book's state with the snapshot
func (b *Book) Load(s Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.accounts = make(map[uuid.UUID]*entity.Account, len(s.Accounts))
	for i := range s.Accounts {
		a := s.Accounts[i]
		b.accounts[a.ID] = &a
	}
	b.customers = make(map[uuid.UUID]*entity.Customer, len(s.Customers))
	for i := range s.Customers {
		c := s.Customers[i]
		b.customers[c.ID] = &c
	}
	b.transactions = make(map[uuid.UUID]*entity.Transaction, len(s.Transactions))
	txs := make([]entity.Transaction, len(s.Transactions))
	copy(txs, s.Transactions)
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.After(txs[j].Date) })
	b.txOrder = make([]uuid.UUID, 0, len(txs))
	for i := range txs {
		t := txs[i]
		b.transactions[t.ID] = &t
		b.txOrder = append(b.txOrder, t.ID)
	}
	b.contracts = make(map[uuid.UUID]*entity.Contract, len(s.Contracts))
	for i := range s.Contracts {
		c := *s.Contracts[i].Clone()
		b.contracts[c.ID] = &c
	}
	b.purchases = make(map[uuid.UUID]*entity.Purchase, len(s.Purchases))
	for i := range s.Purchases {
		p := s.Purchases[i]
		b.purchases[p.ID] = &p
	}
	b.items = make(map[uuid.UUID]*entity.InventoryItem, len(s.Items))
	for i := range s.Items {
		it := s.Items[i]
		b.items[it.ID] = &it
	}
	b.employees = make(map[uuid.UUID]*entity.Employee, len(s.Employees))
	for i := range s.Employees {
		e := s.Employees[i]
		b.employees[e.ID] = &e
	}
	b.bills = make(map[uuid.UUID]*entity.RecurringBill, len(s.Bills))
	for i := range s.Bills {
		bill := s.Bills[i]
		b.bills[bill.ID] = &bill
	}
}

// ---- accounts ----

// CreateAccount registers a named account with an opening balance
func (b *Book) CreateAccount(name string, opening decimal.Decimal) (*entity.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	for _, a := range b.accounts {
		if a.Name == name {
			return nil, ErrDuplicateName
		}
	}
	a := &entity.Account{ID: b.newID(), Name: name, Balance: opening, CreatedAt: b.now(), UpdatedAt: b.now()}
	b.accounts[a.ID] = a
	b.persist.SaveAccount(*a)
	cp := *a
	return &cp, nil
}

// RenameAccount changes an account's display name. Transactions reference
// accounts by id, so renaming never detaches history.
func (b *Book) RenameAccount(id uuid.UUID, name string) (*entity.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	a, ok := b.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	for _, other := range b.accounts {
		if other.ID != id && other.Name == name {
			return nil, ErrDuplicateName
		}
	}
	a.Name = name
	a.UpdatedAt = b.now()
	b.persist.SaveAccount(*a)
	cp := *a
	return &cp, nil
}

// DeleteAccount removes the account. Transactions that reference it are
// orphaned, not deleted.
func (b *Book) DeleteAccount(id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.accounts[id]; !ok {
		return ErrAccountNotFound
	}
	delete(b.accounts, id)
	b.persist.DeleteAccount(id)
	return nil
}

// Account returns a copy of the account
func (b *Book) Account(id uuid.UUID) (*entity.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	a, ok := b.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

// Accounts returns copies of all accounts sorted by name
func (b *Book) Accounts() []entity.Account {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]entity.Account, 0, len(b.accounts))
	for _, a := range b.accounts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ---- customers ----

// CustomerInput carries the CRUD-editable customer fields
type CustomerInput struct {
	Name    string
	Phone   *string
	Address *string
}

// CreateCustomer registers a customer with a zero balance
func (b *Book) CreateCustomer(in CustomerInput) (*entity.Customer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrEmptyName
	}
	for _, c := range b.customers {
		if c.Name == in.Name {
			return nil, ErrDuplicateName
		}
	}
	c := &entity.Customer{
		ID:        b.newID(),
		Name:      in.Name,
		Phone:     in.Phone,
		Address:   in.Address,
		Balance:   decimal.Zero,
		CreatedAt: b.now(),
		UpdatedAt: b.now(),
	}
	b.customers[c.ID] = c
	b.persist.SaveCustomer(*c)
	cp := *c
	return &cp, nil
}

// UpdateCustomer edits contact fields. Balance is not editable here; it only
// moves through ledger transactions.
func (b *Book) UpdateCustomer(id uuid.UUID, in CustomerInput) (*entity.Customer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.customers[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		for _, other := range b.customers {
			if other.ID != id && other.Name == name {
				return nil, ErrDuplicateName
			}
		}
		c.Name = name
	}
	if in.Phone != nil {
		c.Phone = in.Phone
	}
	if in.Address != nil {
		c.Address = in.Address
	}
	c.UpdatedAt = b.now()
	b.persist.SaveCustomer(*c)
	cp := *c
	return &cp, nil
}

// DeleteCustomer removes the customer; their transactions stay in history
func (b *Book) DeleteCustomer(id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.customers[id]; !ok {
		return ErrCustomerNotFound
	}
	delete(b.customers, id)
	b.persist.DeleteCustomer(id)
	return nil
}

// Customer returns a copy of the customer
func (b *Book) Customer(id uuid.UUID) (*entity.Customer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.customers[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	cp := *c
	return &cp, nil
}

// Customers returns copies of all customers sorted by name
func (b *Book) Customers() []entity.Customer {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]entity.Customer, 0, len(b.customers))
	for _, c := range b.customers {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// customerName resolves a customer's display name for note text. Caller
// holds the mutex.
func (b *Book) customerName(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	if c, ok := b.customers[*id]; ok {
		return c.Name
	}
	return ""
}
