// Package noop provides a do-nothing service standing in for
// services disabled by configuration.
package noop

import "context"

type Service struct {
	name string
}

func New(name string) *Service {
	return &Service{name: name}
}

func (s *Service) String() string {
	return s.name + " (disabled)"
}

func (s *Service) Start(context.Context) (runError <-chan error, startErr error) {
	return nil, nil //nolint:nilnil
}

func (s *Service) Stop() error {
	return nil
}
