// Package session holds the in-process state of the rncli shell, a workspace
// of named spaces, vectors and functionals, along with the command handlers
// operating on it.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/rnlab/rnspace/oracle"
	"github.com/rnlab/rnspace/space"
)

// Session is the mutable workspace the shell commands operate on.
type Session struct {
	sync.RWMutex
	started     time.Time
	spaces      map[string]space.LinearSpace
	vectors     map[string]*namedVector
	functionals map[string]*oracle.Functional
}

type namedVector struct {
	spaceName string
	vector    *space.Vector
}

// New creates an empty session.
func New() *Session {
	return &Session{
		started:     time.Now(),
		spaces:      make(map[string]space.LinearSpace),
		vectors:     make(map[string]*namedVector),
		functionals: make(map[string]*oracle.Functional),
	}
}

func (s *Session) space(name string) (space.LinearSpace, error) {
	s.RLock()
	defer s.RUnlock()
	if sp, found := s.spaces[name]; found {
		return sp, nil
	}
	return nil, fmt.Errorf("space %s not found", name)
}

func (s *Session) vector(name string) (space.LinearSpace, *space.Vector, error) {
	s.RLock()
	defer s.RUnlock()
	if v, found := s.vectors[name]; found {
		return s.spaces[v.spaceName], v.vector, nil
	}
	return nil, nil, fmt.Errorf("vector %s not found", name)
}

func (s *Session) functional(name string) (*oracle.Functional, error) {
	s.RLock()
	defer s.RUnlock()
	if f, found := s.functionals[name]; found {
		return f, nil
	}
	return nil, fmt.Errorf("oracle %s not found", name)
}

func (s *Session) addSpace(name string, sp space.LinearSpace) error {
	s.Lock()
	defer s.Unlock()
	if _, found := s.spaces[name]; found {
		return fmt.Errorf("space %s already exists", name)
	}
	s.spaces[name] = sp
	return nil
}

func (s *Session) addVector(spaceName, name string, v *space.Vector) error {
	s.Lock()
	defer s.Unlock()
	if _, found := s.vectors[name]; found {
		return fmt.Errorf("vector %s already exists", name)
	}
	s.vectors[name] = &namedVector{spaceName: spaceName, vector: v}
	return nil
}

func (s *Session) deleteVector(name string) error {
	s.Lock()
	defer s.Unlock()
	if _, found := s.vectors[name]; !found {
		return fmt.Errorf("vector %s not found", name)
	}
	delete(s.vectors, name)
	return nil
}

func (s *Session) addFunctional(name string, f *oracle.Functional) error {
	s.Lock()
	defer s.Unlock()
	if _, found := s.functionals[name]; found {
		return fmt.Errorf("oracle %s already exists", name)
	}
	s.functionals[name] = f
	return nil
}
