// Package common contains shared functionality for command handlers
package common

import (
	"fjacquet/split-ledger/internal/ledger"
	"fjacquet/split-ledger/internal/store"

	"github.com/sirupsen/logrus"
)

// LoadLedger loads the participant collection from the data file into a
// fresh ledger. A missing file yields an empty ledger.
func LoadLedger(path string, log *logrus.Logger) (*ledger.Ledger, *store.Store) {
	s := store.NewStore(path)
	participants, err := s.Load()
	if err != nil {
		log.Fatalf("Error loading ledger data: %v", err)
	}
	l := ledger.New()
	l.Reset(participants)
	return l, s
}

// SaveLedger writes the ledger's participant collection back to the data
// file. Every mutating command calls this after a successful mutation.
func SaveLedger(l *ledger.Ledger, s *store.Store, log *logrus.Logger) {
	if err := s.Save(l.Participants()); err != nil {
		log.Fatalf("Error saving ledger data: %v", err)
	}
}
