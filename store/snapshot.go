package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jask/helmsman/coordinator"
)

// ErrNoSession is returned by Load when no snapshot exists under the name.
var ErrNoSession = errors.New("store: no such session")

// Codec converts screens and modal payloads to and from their stored form.
type Codec struct {
	Encode func(coordinator.Screen) (string, error)
	Decode func(string) (coordinator.Screen, error)
}

// StringCodec passes string screens through unchanged.
func StringCodec() Codec {
	return Codec{
		Encode: func(s coordinator.Screen) (string, error) {
			str, ok := s.(string)
			if !ok {
				return "", fmt.Errorf("store: screen %v is not a string", s)
			}
			return str, nil
		},
		Decode: func(s string) (coordinator.Screen, error) { return s, nil },
	}
}

type sessionNode struct {
	ID    string        `json:"id"`
	Path  []string      `json:"path"`
	Modal *sessionModal `json:"modal,omitempty"`
}

type sessionModal struct {
	Key   string       `json:"key,omitempty"`
	Style int          `json:"style"`
	Value string       `json:"value,omitempty"`
	Flow  *sessionNode `json:"flow"`
}

// Save snapshots the coordinator's presentation chain (its path, presented
// modal and every nested flow below it) under name, replacing any previous
// snapshot.
func (s *Store) Save(ctx context.Context, name string, c *coordinator.Coordinator) error {
	node, err := s.encodeNode(c)
	if err != nil {
		return err
	}
	blob, err := json.Marshal(node)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (name, state, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET state = excluded.state, saved_at = excluded.saved_at`,
		name, string(blob), now())
	if err != nil {
		return fmt.Errorf("save session %q: %w", name, err)
	}
	return nil
}

// Load rebuilds a coordinator chain from the snapshot stored under name.
// opts apply to every restored coordinator, so hosts can install their
// scheduler and app name before any presentation re-attaches.
func (s *Store) Load(ctx context.Context, name string, opts ...coordinator.Option) (*coordinator.Coordinator, error) {
	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM sessions WHERE name = ?`, name).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", name, err)
	}
	var node sessionNode
	if err := json.Unmarshal([]byte(blob), &node); err != nil {
		return nil, fmt.Errorf("load session %q: %w", name, err)
	}
	return s.decodeNode(&node, opts)
}

// Delete removes the snapshot stored under name, if any.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE name = ?`, name)
	return err
}

func (s *Store) encodeNode(c *coordinator.Coordinator) (*sessionNode, error) {
	node := &sessionNode{ID: c.ID()}
	for _, screen := range c.Path() {
		enc, err := s.codec.Encode(screen)
		if err != nil {
			return nil, err
		}
		node.Path = append(node.Path, enc)
	}
	if p := c.State().Presented(); p != nil {
		flow, err := s.encodeNode(p.Coordinator)
		if err != nil {
			return nil, err
		}
		modal := &sessionModal{Key: p.Modal.Key, Style: int(p.Modal.Style), Flow: flow}
		if p.Modal.Value != nil {
			enc, err := s.codec.Encode(p.Modal.Value)
			if err != nil {
				return nil, err
			}
			modal.Value = enc
		}
		node.Modal = modal
	}
	return node, nil
}

func (s *Store) decodeNode(node *sessionNode, opts []coordinator.Option) (*coordinator.Coordinator, error) {
	c := coordinator.New(opts...)
	path := make([]coordinator.Screen, 0, len(node.Path))
	for _, enc := range node.Path {
		screen, err := s.codec.Decode(enc)
		if err != nil {
			return nil, err
		}
		path = append(path, screen)
	}
	c.SetPath(path)
	if node.Modal != nil {
		flow, err := s.decodeNode(node.Modal.Flow, opts)
		if err != nil {
			return nil, err
		}
		modal := coordinator.Modal{
			Key:   node.Modal.Key,
			Style: coordinator.Style(node.Modal.Style),
			Flow:  flow,
		}
		if node.Modal.Value != "" {
			value, err := s.codec.Decode(node.Modal.Value)
			if err != nil {
				return nil, err
			}
			modal.Value = value
		}
		c.Present(modal, coordinator.OverAll)
	}
	return c, nil
}
