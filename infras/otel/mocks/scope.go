package mocks

import "tablebook/infras/otel"

// scopeImpl discards everything recorded on it.
type scopeImpl struct{}

func (s *scopeImpl) End()                         {}
func (s *scopeImpl) Finish(_ *error)              {}
func (s *scopeImpl) TraceError(_ error)           {}
func (s *scopeImpl) AddEvent(_ string)            {}
func (s *scopeImpl) SetAttribute(_ string, _ any) {}

func NewScope() otel.Scope {
	return &scopeImpl{}
}
