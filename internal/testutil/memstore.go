// Package testutil provides an in-memory implementation of every repository
// in internal/core/domain, for service and handler tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sentinelshield/shield/internal/core/domain"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type userRec struct {
	domain.User
	hash string
}

type passwordRec struct {
	domain.PasswordEntry
	userID int
}

type noteRec struct {
	domain.Note
	userID int
}

type listRec struct {
	domain.ShoppingList
	userID int
}

type itemRec struct {
	domain.ShoppingItem
	listID int
}

// MemStore is a concurrency-safe in-memory database. Each insert advances a
// logical clock by one second so "newest first" ordering is deterministic.
type MemStore struct {
	mu  sync.Mutex
	seq int

	users     map[int]*userRec
	passwords map[int]*passwordRec
	notes     map[int]*noteRec
	lists     map[int]*listRec
	items     map[int]*itemRec

	// Err, when set, is returned by every operation.
	Err error
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:     map[int]*userRec{},
		passwords: map[int]*passwordRec{},
		notes:     map[int]*noteRec{},
		lists:     map[int]*listRec{},
		items:     map[int]*itemRec{},
	}
}

func (m *MemStore) next() (int, time.Time) {
	m.seq++
	return m.seq, epoch.Add(time.Duration(m.seq) * time.Second)
}

// Users, Passwords, Notes and Shopping expose the store through each
// repository interface.
func (m *MemStore) Users() domain.UserRepository         { return (*memUsers)(m) }
func (m *MemStore) Passwords() domain.PasswordRepository { return (*memPasswords)(m) }
func (m *MemStore) Notes() domain.NoteRepository         { return (*memNotes)(m) }
func (m *MemStore) Shopping() domain.ShoppingRepository  { return (*memShopping)(m) }

// PasswordHash returns the stored digest for a user.
func (m *MemStore) PasswordHash(userID int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[userID]; ok {
		return u.hash
	}
	return ""
}

// users

type memUsers MemStore

func (r *memUsers) GetByEmail(_ context.Context, email string) (*domain.UserRow, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.users {
		if u.Email == email {
			return &domain.UserRow{ID: u.ID, Email: u.Email, Name: u.Name, PasswordHash: u.hash, CreatedAt: u.CreatedAt}, nil
		}
	}
	return nil, nil
}

func (r *memUsers) GetByID(_ context.Context, id int) (*domain.User, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if u, ok := m.users[id]; ok {
		user := u.User
		return &user, nil
	}
	return nil, nil
}

func (r *memUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	row, err := r.GetByEmail(ctx, email)
	return row != nil, err
}

func (r *memUsers) Create(_ context.Context, email, name, passwordHash string) (*domain.User, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	id, now := m.next()
	rec := &userRec{
		User: domain.User{ID: id, Email: email, Name: name, CreatedAt: now, UpdatedAt: now},
		hash: passwordHash,
	}
	m.users[id] = rec
	user := rec.User
	return &user, nil
}

func (r *memUsers) Update(_ context.Context, id int, email, name string, passwordHash *string) (*domain.User, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	_, now := m.next()
	u.Email, u.Name, u.UpdatedAt = email, name, now
	if passwordHash != nil {
		u.hash = *passwordHash
	}
	user := u.User
	return &user, nil
}

func (r *memUsers) UpdateName(_ context.Context, id int, name string) (*domain.User, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	_, now := m.next()
	u.Name, u.UpdatedAt = name, now
	user := u.User
	return &user, nil
}

func (r *memUsers) Delete(_ context.Context, id int) (bool, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	for pid, p := range m.passwords {
		if p.userID == id {
			delete(m.passwords, pid)
		}
	}
	for nid, n := range m.notes {
		if n.userID == id {
			delete(m.notes, nid)
		}
	}
	for lid, l := range m.lists {
		if l.userID == id {
			m.deleteListLocked(lid)
		}
	}
	return true, nil
}

// passwords

type memPasswords MemStore

func (r *memPasswords) ListByUser(_ context.Context, userID int) ([]domain.PasswordEntry, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := []domain.PasswordEntry{}
	for _, p := range m.passwords {
		if p.userID == userID {
			out = append(out, p.PasswordEntry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memPasswords) Create(_ context.Context, userID int, in domain.PasswordInput) (*domain.PasswordEntry, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	id, now := m.next()
	rec := &passwordRec{userID: userID, PasswordEntry: domain.PasswordEntry{
		ID: id, Title: in.Title, Website: in.Website, Username: in.Username, Password: in.Password,
		Category: in.Category, Notes: in.Notes, CreatedAt: now, UpdatedAt: now,
	}}
	m.passwords[id] = rec
	entry := rec.PasswordEntry
	return &entry, nil
}

func (r *memPasswords) Update(_ context.Context, userID, id int, in domain.PasswordInput) (*domain.PasswordEntry, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.passwords[id]
	if !ok || p.userID != userID {
		return nil, nil
	}
	_, now := m.next()
	p.Title, p.Website, p.Username, p.Password = in.Title, in.Website, in.Username, in.Password
	p.Category, p.Notes, p.UpdatedAt = in.Category, in.Notes, now
	entry := p.PasswordEntry
	return &entry, nil
}

func (r *memPasswords) Delete(_ context.Context, userID, id int) (bool, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	p, ok := m.passwords[id]
	if !ok || p.userID != userID {
		return false, nil
	}
	delete(m.passwords, id)
	return true, nil
}

// notes

type memNotes MemStore

func (r *memNotes) ListByUser(_ context.Context, userID int) ([]domain.Note, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := []domain.Note{}
	for _, n := range m.notes {
		if n.userID == userID {
			out = append(out, n.Note)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memNotes) Create(_ context.Context, userID int, in domain.NoteInput) (*domain.Note, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	id, now := m.next()
	rec := &noteRec{userID: userID, Note: domain.Note{
		ID: id, Title: in.Title, Content: in.Content, Category: in.Category,
		IsFavorite: in.IsFavorite, CreatedAt: now, UpdatedAt: now,
	}}
	m.notes[id] = rec
	note := rec.Note
	return &note, nil
}

func (r *memNotes) Update(_ context.Context, userID, id int, in domain.NoteInput) (*domain.Note, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	n, ok := m.notes[id]
	if !ok || n.userID != userID {
		return nil, nil
	}
	_, now := m.next()
	n.Title, n.Content, n.Category, n.IsFavorite, n.UpdatedAt = in.Title, in.Content, in.Category, in.IsFavorite, now
	note := n.Note
	return &note, nil
}

func (r *memNotes) Delete(_ context.Context, userID, id int) (bool, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	n, ok := m.notes[id]
	if !ok || n.userID != userID {
		return false, nil
	}
	delete(m.notes, id)
	return true, nil
}

// shopping

type memShopping MemStore

func (r *memShopping) countsLocked(listID int) (total, completed int) {
	for _, it := range r.items {
		if it.listID == listID {
			total++
			if it.IsCompleted {
				completed++
			}
		}
	}
	return total, completed
}

func (r *memShopping) ListsByUser(_ context.Context, userID int) ([]domain.ShoppingList, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := []domain.ShoppingList{}
	for _, l := range m.lists {
		if l.userID == userID {
			list := l.ShoppingList
			list.ItemCount, list.CompletedCount = r.countsLocked(l.ID)
			out = append(out, list)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memShopping) CreateList(_ context.Context, userID int, name, description string) (*domain.ShoppingList, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	id, now := m.next()
	rec := &listRec{userID: userID, ShoppingList: domain.ShoppingList{
		ID: id, Name: name, Description: description, CreatedAt: now, UpdatedAt: now,
	}}
	m.lists[id] = rec
	list := rec.ShoppingList
	return &list, nil
}

func (r *memShopping) UpdateList(_ context.Context, userID, id int, name, description string) (*domain.ShoppingList, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	l, ok := m.lists[id]
	if !ok || l.userID != userID {
		return nil, nil
	}
	_, now := m.next()
	l.Name, l.Description, l.UpdatedAt = name, description, now
	list := l.ShoppingList
	list.ItemCount, list.CompletedCount = r.countsLocked(id)
	return &list, nil
}

func (r *memShopping) DeleteList(_ context.Context, userID, id int) (bool, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	l, ok := m.lists[id]
	if !ok || l.userID != userID {
		return false, nil
	}
	m.deleteListLocked(id)
	return true, nil
}

func (m *MemStore) deleteListLocked(id int) {
	delete(m.lists, id)
	for iid, it := range m.items {
		if it.listID == id {
			delete(m.items, iid)
		}
	}
}

func (r *memShopping) ListOwnedBy(_ context.Context, userID, listID int) (bool, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	l, ok := m.lists[listID]
	return ok && l.userID == userID, nil
}

func (r *memShopping) ItemOwnedBy(_ context.Context, userID, itemID int) (bool, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	it, ok := m.items[itemID]
	if !ok {
		return false, nil
	}
	l, ok := m.lists[it.listID]
	return ok && l.userID == userID, nil
}

func (r *memShopping) ItemsByList(_ context.Context, listID int) ([]domain.ShoppingItem, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := []domain.ShoppingItem{}
	for _, it := range m.items {
		if it.listID == listID {
			out = append(out, it.ShoppingItem)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsCompleted != out[j].IsCompleted {
			return !out[i].IsCompleted
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memShopping) CreateItem(_ context.Context, listID int, in domain.ShoppingItemInput) (*domain.ShoppingItem, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	id, now := m.next()
	rec := &itemRec{listID: listID, ShoppingItem: domain.ShoppingItem{
		ID: id, Name: in.Name, Quantity: in.Quantity, Price: in.Price, Category: in.Category,
		IsCompleted: in.IsCompleted, CreatedAt: now, UpdatedAt: now,
	}}
	m.items[id] = rec
	item := rec.ShoppingItem
	return &item, nil
}

func (r *memShopping) UpdateItem(_ context.Context, id int, in domain.ShoppingItemInput) (*domain.ShoppingItem, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	it, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	_, now := m.next()
	it.Name, it.Quantity, it.Price, it.Category = in.Name, in.Quantity, in.Price, in.Category
	it.IsCompleted, it.UpdatedAt = in.IsCompleted, now
	item := it.ShoppingItem
	return &item, nil
}

func (r *memShopping) DeleteItem(_ context.Context, id int) (bool, error) {
	m := (*MemStore)(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}
