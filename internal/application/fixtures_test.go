package application

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gurushop/commerce-ledger/internal/domain"
	"github.com/gurushop/commerce-ledger/internal/ports"
)

type pairKey struct {
	userID    uuid.UUID
	productID uuid.UUID
}

// fakeFavoriteRepo mimics the composite-unique-key behavior of the real
// store: the insert itself is the duplicate arbiter.
type fakeFavoriteRepo struct {
	mu    sync.Mutex
	rows  map[pairKey]domain.Favorite
	seq   int
	clock func() time.Time
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{
		rows:  make(map[pairKey]domain.Favorite),
		clock: func() time.Time { return time.Now().UTC() },
	}
}

func (f *fakeFavoriteRepo) Insert(_ context.Context, userID, productID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := pairKey{userID: userID, productID: productID}
	if _, ok := f.rows[key]; ok {
		return domain.ErrConflict
	}
	f.seq++
	f.rows[key] = domain.Favorite{
		UserID:    userID,
		ProductID: productID,
		CreatedAt: f.clock().Add(time.Duration(f.seq) * time.Millisecond),
	}
	return nil
}

func (f *fakeFavoriteRepo) Delete(_ context.Context, userID, productID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, pairKey{userID: userID, productID: productID})
	return nil
}

func (f *fakeFavoriteRepo) Exists(_ context.Context, userID, productID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rows[pairKey{userID: userID, productID: productID}]
	return ok, nil
}

func (f *fakeFavoriteRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Favorite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Favorite, 0)
	for key, row := range f.rows {
		if key.userID == userID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeFavoriteRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeOrderRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{rows: make(map[uuid.UUID]domain.Order)}
}

func (f *fakeOrderRepo) put(order domain.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[order.OrderID] = order
}

func (f *fakeOrderRepo) GetByID(_ context.Context, orderID uuid.UUID) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.rows[orderID]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Order, 0)
	for _, order := range f.rows {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) MarkPaid(_ context.Context, orderID uuid.UUID) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.rows[orderID]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	order.AlreadyPaid = true
	f.rows[orderID] = order
	return order, nil
}

func (f *fakeOrderRepo) SumAmountByUser(_ context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := decimal.Zero
	for _, order := range f.rows {
		if order.UserID == userID {
			total = total.Add(order.Amount)
		}
	}
	return total, nil
}

type fakeUserRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{rows: make(map[uuid.UUID]domain.User)}
}

func (f *fakeUserRepo) put(user domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[user.UserID] = user
}

func (f *fakeUserRepo) GetByID(_ context.Context, userID uuid.UUID) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.rows[userID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.rows {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUserRepo) UpdatePasswordHash(_ context.Context, userID uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.rows[userID]
	if !ok {
		return domain.ErrNotFound
	}
	user.PasswordHash = passwordHash
	f.rows[userID] = user
	return nil
}

type fakeProductRepo struct {
	rows map[uuid.UUID]domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{rows: make(map[uuid.UUID]domain.Product)}
}

func (f *fakeProductRepo) GetCard(_ context.Context, productID uuid.UUID) (domain.Product, error) {
	product, ok := f.rows[productID]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return product, nil
}

func (f *fakeProductRepo) List(_ context.Context, query ports.ProductQuery) (ports.ProductPage, error) {
	items := make([]domain.Product, 0)
	for _, product := range f.rows {
		if query.Search == "" || strings.Contains(strings.ToLower(product.Name), strings.ToLower(query.Search)) {
			items = append(items, product)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return ports.ProductPage{Items: items, Page: query.Page, TotalPages: 1}, nil
}

type fakeResetLimiter struct {
	mu     sync.Mutex
	counts map[string]int
}

func newFakeResetLimiter() *fakeResetLimiter {
	return &fakeResetLimiter{counts: make(map[string]int)}
}

func (f *fakeResetLimiter) Allow(_ context.Context, key string, threshold int, _ time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[key]++
	return f.counts[key] <= threshold, nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailSender struct {
	mu      sync.Mutex
	sent    []sentMail
	failErr error
}

func (f *fakeMailSender) Send(_ context.Context, to, subject, htmlBody string) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

type publishedEvent struct {
	EventType    string
	Payload      []byte
	PartitionKey string
}

type fakeEventPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (f *fakeEventPublisher) Publish(_ context.Context, eventType string, payload []byte, partitionKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, publishedEvent{EventType: eventType, Payload: payload, PartitionKey: partitionKey})
	return nil
}

type fixture struct {
	service   *Service
	favorites *fakeFavoriteRepo
	orders    *fakeOrderRepo
	users     *fakeUserRepo
	products  *fakeProductRepo
	limiter   *fakeResetLimiter
	mail      *fakeMailSender
	events    *fakeEventPublisher
}

func newFixture() *fixture {
	favorites := newFakeFavoriteRepo()
	orders := newFakeOrderRepo()
	users := newFakeUserRepo()
	products := newFakeProductRepo()
	limiter := newFakeResetLimiter()
	mailSender := &fakeMailSender{}
	events := &fakeEventPublisher{}

	svc := NewService(Dependencies{
		Config: Config{
			TierPolicy:          domain.DefaultTierPolicy(),
			TempPasswordLength:  8,
			ResetRateThreshold:  3,
			ResetRateWindow:     15 * time.Minute,
			RecoveryMailSubject: "Password reset notice",
		},
		Favorites:  favorites,
		Orders:     orders,
		Users:      users,
		Products:   products,
		ResetLimit: limiter,
		Mail:       mailSender,
		Hasher:     fakeHasher{},
		Events:     events,
	})

	return &fixture{
		service:   svc,
		favorites: favorites,
		orders:    orders,
		users:     users,
		products:  products,
		limiter:   limiter,
		mail:      mailSender,
		events:    events,
	}
}
