package application

import (
	"time"

	"github.com/gurushop/commerce-ledger/internal/domain"
	"github.com/gurushop/commerce-ledger/internal/ports"
)

// Config carries the business policy knobs resolved at bootstrap.
type Config struct {
	TierPolicy          domain.TierPolicy
	TempPasswordLength  int
	ResetRateThreshold  int
	ResetRateWindow     time.Duration
	RecoveryMailSubject string
}

// Service implements the account commerce ledger use-cases: favorites,
// order payment transitions, membership computation, catalog reads, and
// password recovery.
type Service struct {
	cfg        Config
	favorites  ports.FavoriteRepository
	orders     ports.OrderRepository
	users      ports.UserRepository
	products   ports.ProductRepository
	resetLimit ports.ResetRateLimiter
	mail       ports.MailSender
	hasher     ports.PasswordHasher
	events     ports.EventPublisher
	nowFn      func() time.Time
}

type Dependencies struct {
	Config     Config
	Favorites  ports.FavoriteRepository
	Orders     ports.OrderRepository
	Users      ports.UserRepository
	Products   ports.ProductRepository
	ResetLimit ports.ResetRateLimiter
	Mail       ports.MailSender
	Hasher     ports.PasswordHasher
	Events     ports.EventPublisher
}

func NewService(deps Dependencies) *Service {
	return &Service{
		cfg:        deps.Config,
		favorites:  deps.Favorites,
		orders:     deps.Orders,
		users:      deps.Users,
		products:   deps.Products,
		resetLimit: deps.ResetLimit,
		mail:       deps.Mail,
		hasher:     deps.Hasher,
		events:     deps.Events,
		nowFn:      func() time.Time { return time.Now().UTC() },
	}
}
