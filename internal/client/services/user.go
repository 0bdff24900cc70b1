package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/hacksnooze/internal/client/client"
	"github.com/dmitrijs2005/hacksnooze/internal/client/models"
	"github.com/dmitrijs2005/hacksnooze/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// StoryLookup resolves a story id to the catalog's instance.
type StoryLookup interface {
	Get(id string) (*models.Story, bool)
}

// UserService manages the authenticated identity: hydration from the stored
// session, login, registration, logout and favorites.
type UserService struct {
	client   client.Client
	sessions *SessionStore
	stories  StoryLookup
	log      logging.Logger
	now      func() time.Time
}

func NewUserService(c client.Client, sessions *SessionStore, stories StoryLookup, log logging.Logger) *UserService {
	return &UserService{client: c, sessions: sessions, stories: stories, log: log, now: time.Now}
}

// Hydrate rebuilds the user from a stored session. Every failure short of a
// cancelled context degrades to (nil, nil): a missing or partial session, a
// token that is expired or belongs to someone else, a remote rejection and an
// unreachable server all mean "logged out".
func (s *UserService) Hydrate(ctx context.Context, session models.Session) (*models.User, error) {
	if !session.Valid() {
		return nil, nil
	}

	if err := inspectToken(session.Token, session.Username, s.now()); err != nil {
		s.log.Info(ctx, "stored session discarded", "username", session.Username, "reason", err)
		return nil, nil
	}

	user, err := s.client.GetUser(ctx, session.Token, session.Username)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, client.ErrUnauthorized) || errors.Is(err, client.ErrNotFound) {
			s.log.Info(ctx, "stored session rejected by server", "username", session.Username)
		} else {
			s.log.Warn(ctx, "session hydration failed", "username", session.Username, "error", err)
		}
		return nil, nil
	}
	return user, nil
}

// inspectToken looks at the claims of a JWT login token without verifying
// its signature. Tokens that are not JWTs are left to the server.
func inspectToken(token, username string, now time.Time) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(now) {
		return errTokenExpired
	}
	if claimed, ok := claims["username"].(string); ok && claimed != "" && claimed != username {
		return errTokenMismatch
	}
	return nil
}

// Login authenticates and persists the new session. On failure the stored
// session is left as it was.
func (s *UserService) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	user, err := s.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "logged in", "username", user.Username)
	return user, nil
}

// Register creates the account and persists its session.
func (s *UserService) Register(ctx context.Context, username string, password []byte, name string) (*models.User, error) {
	user, err := s.client.Signup(ctx, username, password, name)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "account created", "username", user.Username)
	return user, nil
}

func (s *UserService) persist(ctx context.Context, user *models.User) error {
	err := s.sessions.Save(ctx, models.Session{Token: user.LoginToken, Username: user.Username})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Logout forgets the stored session. The caller rebuilds all in-memory state.
func (s *UserService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// ToggleFavorite adds or removes storyID from the user's favorites. The
// in-memory set only changes after the server has accepted the request.
func (s *UserService) ToggleFavorite(ctx context.Context, user *models.User, storyID string, add bool) error {
	if user == nil {
		return ErrNoSession
	}

	var (
		remote *models.User
		err    error
	)
	if add {
		remote, err = s.client.AddFavorite(ctx, user.LoginToken, user.Username, storyID)
	} else {
		remote, err = s.client.RemoveFavorite(ctx, user.LoginToken, user.Username, storyID)
	}
	if err != nil {
		return fmt.Errorf("toggle favorite %s: %w", storyID, err)
	}

	if !add {
		user.Favorites = models.Without(user.Favorites, storyID)
		return nil
	}
	if user.IsFavorite(storyID) {
		return nil
	}
	user.Favorites = append(user.Favorites, s.resolve(storyID, remote))
	return nil
}

// resolve prefers the catalog instance, then the copy in the server's reply.
func (s *UserService) resolve(storyID string, remote *models.User) *models.Story {
	if s.stories != nil {
		if story, ok := s.stories.Get(storyID); ok {
			return story
		}
	}
	if remote != nil {
		if i := models.IndexOf(remote.Favorites, storyID); i >= 0 {
			return remote.Favorites[i]
		}
	}
	return &models.Story{ID: storyID}
}
