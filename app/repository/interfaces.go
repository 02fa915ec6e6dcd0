package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByActivationToken(token string) (*models.User, error)
	Update(user *models.User) error
	SetCustomerID(id uuid.UUID, customerID string) error
	Search(query string) ([]models.User, error)
	Count() (int64, error)
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	Category     string
	Status       string
	FeaturedOnly bool
	Limit        int
}

// ProductWithRating is a product together with its review aggregation,
// computed at read time.
type ProductWithRating struct {
	Product       models.Product
	AverageRating float64
	ReviewCount   int64
}

// ProductRepository defines the interface for product-related database operations
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uuid.UUID) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	GetActiveBySlug(slug string) (*models.Product, error)
	List(filter ProductFilter) ([]models.Product, error)
	ListWithRatings(filter ProductFilter) ([]ProductWithRating, error)
	GetReviews(productID uuid.UUID) ([]models.ProductReview, error)
	Update(product *models.Product) error
	Archive(id uuid.UUID) error
	Count() (int64, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uuid.UUID) (bool, error)
}

// TierWithBundle pairs an active subscription tier with its owning bundle for
// provider price-reference matching.
type TierWithBundle struct {
	Tier   models.BundleSubscriptionTier
	Bundle models.Bundle
}

// BundleRepository defines the interface for bundle-related database
// operations, including composition links and subscription tiers.
type BundleRepository interface {
	Create(bundle *models.Bundle) error
	GetByID(id uuid.UUID) (*models.Bundle, error)
	GetBySlug(slug string) (*models.Bundle, error)
	ListByStatus(status string, featuredOnly bool) ([]models.Bundle, error)
	Update(bundle *models.Bundle) error
	Archive(id uuid.UUID) error
	Count() (int64, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uuid.UUID) (bool, error)

	// Composition links
	GetLinks(bundleID uuid.UUID) ([]models.BundleProduct, error)
	LinkExists(bundleID, productID uuid.UUID) (bool, error)
	NextDisplayOrder(bundleID uuid.UUID) (int, error)
	AddLink(link *models.BundleProduct) error
	RemoveLink(bundleID, productID uuid.UUID) error
	ReorderLink(linkID uuid.UUID, displayOrder int) error

	// Subscription tiers
	GetTiers(bundleID uuid.UUID) ([]models.BundleSubscriptionTier, error)
	GetTierByID(id uuid.UUID) (*models.BundleSubscriptionTier, error)
	CreateTier(tier *models.BundleSubscriptionTier) error
	UpdateTier(tier *models.BundleSubscriptionTier) error
	DeleteTier(id uuid.UUID) error
	ListActiveTiersWithBundles() ([]TierWithBundle, error)
}

// RelationshipRepository defines the interface for product relationship operations
type RelationshipRepository interface {
	Create(rel *models.ProductRelationship) error
	GetByID(id uuid.UUID) (*models.ProductRelationship, error)
	ListByProduct(productID uuid.UUID) ([]models.ProductRelationship, error)
	FindByPair(productID, relatedProductID uuid.UUID) (*models.ProductRelationship, error)
	Update(rel *models.ProductRelationship) error
	Delete(id uuid.UUID) error
}

// AudioDemoRepository defines the interface for audio demo curation
type AudioDemoRepository interface {
	Create(demo *models.AudioDemo) error
	GetByID(id uuid.UUID) (*models.AudioDemo, error)
	ListByProduct(productID uuid.UUID, activeOnly bool) ([]models.AudioDemo, error)
	ExistsForURL(productID uuid.UUID, demoURL string) (bool, error)
	Update(demo *models.AudioDemo) error
	Delete(id uuid.UUID) error
}

// GrantRepository defines the interface for product grant operations
type GrantRepository interface {
	Create(grant *models.ProductGrant) error
	GetByUserAndProduct(userID, productID uuid.UUID) (*models.ProductGrant, error)
	ListByUser(userID uuid.UUID) ([]models.ProductGrant, error)
	Revoke(id uuid.UUID) error
	Count() (int64, error)
}

// ResellerRepository defines the interface for reseller and redemption code
// operations
type ResellerRepository interface {
	Create(reseller *models.Reseller) error
	GetByID(id uuid.UUID) (*models.Reseller, error)
	List(activeOnly bool) ([]models.Reseller, error)
	Update(reseller *models.Reseller) error
	Delete(id uuid.UUID) error

	CreateCodes(codes []*models.ResellerCode) error
	GetCode(code string) (*models.ResellerCode, error)
	ListCodes(resellerID uuid.UUID, includeRedeemed bool) ([]models.ResellerCode, error)
	ListAllCodes() ([]models.ResellerCode, error)
	RedeemCode(codeID, userID uuid.UUID, grant *models.ProductGrant) error
}

// QueueRepository defines the interface for cache/queue operations
type QueueRepository interface {
	GetAllKeys() ([]string, error)
	GetValue(key string) (string, error)
	GetTTL(key string) (time.Duration, error)
	DeleteKey(key string) (int64, error)
	GetListLength(key string) (int64, error)
	FindKeysByPatterns(patterns []string) ([]string, error)
	DeleteKeys(keys []string) (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	Product      ProductRepository
	Bundle       BundleRepository
	Relationship RelationshipRepository
	AudioDemo    AudioDemoRepository
	Grant        GrantRepository
	Reseller     ResellerRepository
	Queue        QueueRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Product:      NewProductRepository(db),
		Bundle:       NewBundleRepository(db),
		Relationship: NewRelationshipRepository(db),
		AudioDemo:    NewAudioDemoRepository(db),
		Grant:        NewGrantRepository(db),
		Reseller:     NewResellerRepository(db),
		Queue:        NewQueueRepository(),
	}
}
