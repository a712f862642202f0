package memory

import (
	"context"
	"strings"

	"github.com/nguyentranbao-ct/team-chat/internal/models"
	"github.com/nguyentranbao-ct/team-chat/pkg/util"
)

type UserRepo struct {
	store *Store
}

func NewUserRepository(store *Store) UserRepository {
	return &UserRepo{store: store}
}

// Upsert inserts a directory entry, or replaces the existing one with the
// same id. Used by the startup seeding path.
func (r *UserRepo) Upsert(ctx context.Context, user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == "" {
		user.ID = s.newID()
	}
	if user.Status == "" {
		user.Status = models.UserStatusOffline
	}
	if _, ok := s.users[user.ID]; !ok {
		s.userOrder = append(s.userOrder, user.ID)
	}
	stored := cloneUser(*user)
	s.users[user.ID] = &stored
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, models.NewNotFound("user", id)
	}
	user := cloneUser(*u)
	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if strings.EqualFold(s.users[id].Email, email) {
			user := cloneUser(*s.users[id])
			return &user, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, cloneUser(*s.users[id]))
	}
	return users, nil
}

// UpdateStatus records a presence change and stamps last-seen with the
// store clock.
func (r *UserRepo) UpdateStatus(ctx context.Context, id string, status models.UserStatus) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, models.NewNotFound("user", id)
	}
	u.Status = status
	u.LastSeen = util.Ptr(s.now())
	user := cloneUser(*u)
	return &user, nil
}
