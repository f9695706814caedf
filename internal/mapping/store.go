// Package mapping persists user-learned import mappings: sanitized
// description -> payee, sanitized description -> narration, and payee ->
// category account. Entries are written only after explicit user
// confirmation during review.
package mapping

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultDateTolerance is the duplicate-detection window in days.
const DefaultDateTolerance = 2

// fileData is the on-disk YAML layout.
type fileData struct {
	Payees           map[string]string            `yaml:"payees,omitempty"`
	Narrations       map[string]string            `yaml:"narrations,omitempty"`
	Accounts         map[string]string            `yaml:"accounts,omitempty"`
	DateTolerance    int                          `yaml:"date_tolerance_days"`
	ImporterSettings map[string]map[string]string `yaml:"importer_settings,omitempty"`
}

// Store holds the mappings in memory and writes through to a YAML file on
// every change. Access is serialized so concurrent importer instances can
// share one store.
type Store struct {
	mu   sync.Mutex
	path string
	data fileData
}

// Load reads a mapping file, returning an empty store if it does not exist.
func Load(path string) (*Store, error) {
	s := &Store{path: path, data: fileData{DateTolerance: DefaultDateTolerance}}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.ensureMaps()
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading mappings: %w", err)
	}
	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parsing mappings: %w", err)
	}
	if s.data.DateTolerance <= 0 {
		s.data.DateTolerance = DefaultDateTolerance
	}
	s.ensureMaps()
	return s, nil
}

func (s *Store) ensureMaps() {
	if s.data.Payees == nil {
		s.data.Payees = make(map[string]string)
	}
	if s.data.Narrations == nil {
		s.data.Narrations = make(map[string]string)
	}
	if s.data.Accounts == nil {
		s.data.Accounts = make(map[string]string)
	}
	if s.data.ImporterSettings == nil {
		s.data.ImporterSettings = make(map[string]map[string]string)
	}
}

// save writes the store atomically. Callers must hold mu.
func (s *Store) save() error {
	raw, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("marshaling mappings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("writing mappings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing mappings: %w", err)
	}
	return nil
}

// Payee returns the learned payee for a sanitized description.
func (s *Store) Payee(description string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payee, ok := s.data.Payees[description]
	return payee, ok
}

// SetPayee stores a payee for a sanitized description. An empty payee
// deletes the entry.
func (s *Store) SetPayee(description, payee string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if payee == "" {
		delete(s.data.Payees, description)
	} else {
		s.data.Payees[description] = payee
	}
	return s.save()
}

// Narration returns the learned narration for a sanitized description.
func (s *Store) Narration(description string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	narration, ok := s.data.Narrations[description]
	return narration, ok
}

// SetNarration stores a narration for a sanitized description. An empty
// narration deletes the entry.
func (s *Store) SetNarration(description, narration string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if narration == "" {
		delete(s.data.Narrations, description)
	} else {
		s.data.Narrations[description] = narration
	}
	return s.save()
}

// CategoryAccount returns the learned category account name for a payee.
func (s *Store) CategoryAccount(payee string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.data.Accounts[payee]
	return account, ok
}

// SetCategoryAccount stores a category account name for a payee. An empty
// account deletes the entry.
func (s *Store) SetCategoryAccount(payee, account string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account == "" {
		delete(s.data.Accounts, payee)
	} else {
		s.data.Accounts[payee] = account
	}
	return s.save()
}

// DateTolerance returns the duplicate-detection window in days.
func (s *Store) DateTolerance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.DateTolerance
}

// SetDateTolerance updates the duplicate-detection window.
func (s *Store) SetDateTolerance(days int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if days <= 0 {
		days = DefaultDateTolerance
	}
	s.data.DateTolerance = days
	return s.save()
}

// ImporterSetting returns a free-form setting namespaced by importer kind.
func (s *Store) ImporterSetting(kind, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings, ok := s.data.ImporterSettings[kind]
	if !ok {
		return "", false
	}
	value, ok := settings[key]
	return value, ok
}

// SetImporterSetting stores a free-form setting namespaced by importer kind.
// An empty value deletes the entry.
func (s *Store) SetImporterSetting(kind, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value == "" {
		delete(s.data.ImporterSettings[kind], key)
		if len(s.data.ImporterSettings[kind]) == 0 {
			delete(s.data.ImporterSettings, kind)
		}
		return s.save()
	}
	if s.data.ImporterSettings[kind] == nil {
		s.data.ImporterSettings[kind] = make(map[string]string)
	}
	s.data.ImporterSettings[kind][key] = value
	return s.save()
}

// Payees returns a copy of the description -> payee map.
func (s *Store) Payees() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMap(s.data.Payees)
}

// Narrations returns a copy of the description -> narration map.
func (s *Store) Narrations() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMap(s.data.Narrations)
}

// CategoryAccounts returns a copy of the payee -> account map.
func (s *Store) CategoryAccounts() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMap(s.data.Accounts)
}

func copyMap(m map[string]string) map[string]string {
	result := make(map[string]string, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
