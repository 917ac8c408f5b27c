// Package sfv builds Street Fighter V proposals from frame data exported
// by the FAT (Frame Assistant Tool) project.
//
// The source data is a map of character name to character data:
//
//	{
//	  "Ryu": {
//	    "stats": {"health": 1000, "stun": 1000, ...},
//	    "moves": {
//	      "normal": {"Stand LP": {"startup": "4", "onBlock": "2", ...}},
//	      "vtOne":  {...},
//	      "vtTwo":  {...}
//	    }
//	  }
//	}
package sfv

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/core/ports/driven"
)

// Name is the import source tag stamped on every proposal.
const Name = "fat-sfv"

// DefaultGameID is the target id of the game document.
const DefaultGameID = "sfv"

// Ensure Importer implements the interface.
var _ driven.ProposalBuilder = (*Importer)(nil)

// Importer builds game, character and move proposals.
type Importer struct {
	gameID string
}

// Option configures the importer.
type Option func(*Importer)

// WithGameID sets the target id of the game document.
func WithGameID(id string) Option {
	return func(i *Importer) {
		if id != "" {
			i.gameID = id
		}
	}
}

// New creates a new importer with the given options.
func New(opts ...Option) *Importer {
	i := &Importer{gameID: DefaultGameID}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Name returns the import source tag.
func (i *Importer) Name() string {
	return Name
}

// Build returns the game proposal followed by every character proposal,
// each followed by its move proposals. Characters are visited in name order.
func (i *Importer) Build(data map[string]any) ([]domain.Proposal, error) {
	proposals := []domain.Proposal{gameProposal(i.gameID)}
	for _, name := range sortedKeys(data) {
		charData, ok := data[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("character %q: expected an object: %w", name, domain.ErrInvalidInput)
		}
		proposals = append(proposals, characterProposals(i.gameID, name, charData)...)
	}
	return proposals, nil
}

// emptyMedia is sent for every proposal; media is managed in the web UI.
var emptyMedia = json.RawMessage(`{}`)

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
