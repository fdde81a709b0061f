// Package session keeps per-conversation state in memory. State lives for as
// long as the process does; nothing is persisted across restarts.
package session

import (
	"sync"

	"taqvim_bot/internal/domain"
)

// State holds everything the bot remembers about one conversation: the chosen
// language, the "awaiting input" latches, and the most recent mosque search
// results for index-based drill-down.
type State struct {
	Language                domain.Language
	AwaitingImage           bool
	AwaitingLocation        bool
	AwaitingWeatherLocation bool
	LastMosques             []domain.Mosque
}

// Store owns one State per chat, created lazily with the default language.
// Handlers for the same chat never run concurrently, but different chats may,
// so access to the map and to individual states goes through the mutex.
type Store struct {
	mu    sync.Mutex
	chats map[int64]*State
}

// NewStore constructs an empty session store.
func NewStore() *Store {
	return &Store{chats: make(map[int64]*State)}
}

func (s *Store) state(chatID int64) *State {
	state, ok := s.chats[chatID]
	if !ok {
		state = &State{Language: domain.DefaultLanguage}
		s.chats[chatID] = state
	}

	return state
}

// Language returns the chat's selected language.
func (s *Store) Language(chatID int64) domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state(chatID).Language
}

// SetLanguage records the chat's selected language.
func (s *Store) SetLanguage(chatID int64, lang domain.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state(chatID).Language = lang
}

// SetAwaitingImage arms or disarms the image latch.
func (s *Store) SetAwaitingImage(chatID int64, awaiting bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state(chatID).AwaitingImage = awaiting
}

// SetAwaitingLocation arms or disarms the mosque-search location latch.
func (s *Store) SetAwaitingLocation(chatID int64, awaiting bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state(chatID).AwaitingLocation = awaiting
}

// SetAwaitingWeatherLocation arms or disarms the weather location latch.
func (s *Store) SetAwaitingWeatherLocation(chatID int64, awaiting bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state(chatID).AwaitingWeatherLocation = awaiting
}

// TakeAwaitingImage reports whether the image latch was set and clears it.
// The clear happens exactly once, regardless of what the caller does next.
func (s *Store) TakeAwaitingImage(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(chatID)
	was := state.AwaitingImage
	state.AwaitingImage = false

	return was
}

// TakeAwaitingLocation reports whether the mosque location latch was set and
// clears it.
func (s *Store) TakeAwaitingLocation(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(chatID)
	was := state.AwaitingLocation
	state.AwaitingLocation = false

	return was
}

// TakeAwaitingWeatherLocation reports whether the weather location latch was
// set and clears it.
func (s *Store) TakeAwaitingWeatherLocation(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(chatID)
	was := state.AwaitingWeatherLocation
	state.AwaitingWeatherLocation = false

	return was
}

// SetMosques stores the latest mosque search results. A new search always
// replaces the previous result set.
func (s *Store) SetMosques(chatID int64, mosques []domain.Mosque) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state(chatID).LastMosques = mosques
}

// Mosques returns the stored mosque results for the chat.
func (s *Store) Mosques(chatID int64) []domain.Mosque {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state(chatID).LastMosques
}

// MosqueAt returns the stored result at index i. Indices from stale keyboards
// that no longer fit the current result set report false.
func (s *Store) MosqueAt(chatID int64, i int) (domain.Mosque, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mosques := s.state(chatID).LastMosques
	if i < 0 || i >= len(mosques) {
		return domain.Mosque{}, false
	}

	return mosques[i], true
}
