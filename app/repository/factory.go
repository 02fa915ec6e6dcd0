package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// GetProductRepository returns the product repository instance
func (f *Factory) GetProductRepository() ProductRepository {
	return f.GetRepositories().Product
}

// GetBundleRepository returns the bundle repository instance
func (f *Factory) GetBundleRepository() BundleRepository {
	return f.GetRepositories().Bundle
}

// GetRelationshipRepository returns the product relationship repository instance
func (f *Factory) GetRelationshipRepository() RelationshipRepository {
	return f.GetRepositories().Relationship
}

// GetAudioDemoRepository returns the audio demo repository instance
func (f *Factory) GetAudioDemoRepository() AudioDemoRepository {
	return f.GetRepositories().AudioDemo
}

// GetGrantRepository returns the product grant repository instance
func (f *Factory) GetGrantRepository() GrantRepository {
	return f.GetRepositories().Grant
}

// GetResellerRepository returns the reseller repository instance
func (f *Factory) GetResellerRepository() ResellerRepository {
	return f.GetRepositories().Reseller
}

// GetQueueRepository returns the queue repository instance
func (f *Factory) GetQueueRepository() QueueRepository {
	return f.GetRepositories().Queue
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}
