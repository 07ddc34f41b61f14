// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/guttosm/postbox/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockMail struct {
	mock.Mock
}

func (m *MockMail) Kind() model.Kind {
	args := m.Called()
	return args.Get(0).(model.Kind)
}

func (m *MockMail) Weight() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func (m *MockMail) Express() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockMail) Destination() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockMail) IsValid() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockMail) CalculateStampAmount() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func (m *MockMail) Detail() (model.Detail, bool) {
	args := m.Called()
	return args.Get(0).(model.Detail), args.Bool(1)
}
