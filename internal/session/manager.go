package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/windcaddy/backend/internal/clubs"
	"github.com/windcaddy/backend/internal/config"
	"github.com/windcaddy/backend/internal/models"
)

// Manager is the global session manager, set once at startup.
var Manager *SessionManager

// SessionManager owns the live shot sessions and their Redis persistence.
type SessionManager struct {
	sessions map[string]*ShotSession
	clubRepo *clubs.Repo
	rdb      *redis.Client
	cfg      *config.Config
	mu       sync.RWMutex
}

// InitializeManager wires the global manager with its dependencies.
func InitializeManager(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) {
	Manager = &SessionManager{
		sessions: make(map[string]*ShotSession),
		clubRepo: clubs.NewRepo(db),
		rdb:      rdb,
		cfg:      cfg,
	}
}

// Create registers a new session under the given token with default state.
func (sm *SessionManager) Create(token string) *ShotSession {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	s := defaultSession(token)
	sm.sessions[token] = s
	log.Printf("[SESSION] Created shot session %s", token)
	return s
}

// GetByToken returns a live session, falling back to Redis for sessions that
// survived a restart or expired out of memory.
func (sm *SessionManager) GetByToken(token string) (*ShotSession, error) {
	sm.mu.RLock()
	s, ok := sm.sessions[token]
	sm.mu.RUnlock()
	if ok {
		return s, nil
	}

	s, err := sm.loadFromRedis(token)
	if err != nil {
		return nil, fmt.Errorf("session not found: %s", token)
	}

	sm.mu.Lock()
	sm.sessions[token] = s
	sm.mu.Unlock()
	return s, nil
}

// ResolveClub fetches the session's selected club row, or nil when no club is
// selected.
func (sm *SessionManager) ResolveClub(s *ShotSession) (*models.Club, error) {
	s.mu.Lock()
	name := s.ClubName
	s.mu.Unlock()

	if name == "" {
		return nil, nil
	}
	return sm.clubRepo.GetByName(name)
}

// Clubs exposes the read-only club repository.
func (sm *SessionManager) Clubs() *clubs.Repo {
	return sm.clubRepo
}

// SaveToRedis persists the session inputs with the configured TTL so a
// reconnecting client resumes its slider state.
func (sm *SessionManager) SaveToRedis(s *ShotSession) error {
	if sm.rdb == nil {
		return nil
	}

	s.mu.Lock()
	data, err := json.Marshal(s)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	ttl := time.Duration(sm.cfg.SessionExpiryMinutes) * time.Minute
	ctx := context.Background()
	if err := sm.rdb.SetEx(ctx, sessionKey(s.Token), data, ttl).Err(); err != nil {
		log.Printf("[SESSION] Failed to persist session %s: %v", s.Token, err)
		return err
	}
	return nil
}

func (sm *SessionManager) loadFromRedis(token string) (*ShotSession, error) {
	if sm.rdb == nil {
		return nil, fmt.Errorf("redis unavailable")
	}

	ctx := context.Background()
	data, err := sm.rdb.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		return nil, err
	}

	var s ShotSession
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, err
	}
	log.Printf("[SESSION] Restored shot session %s from Redis", token)
	return &s, nil
}

func sessionKey(token string) string {
	return "shot:" + token + ":state"
}
