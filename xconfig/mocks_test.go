package xconfig

import (
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
)

type mockUnmarshaler struct {
	mock.Mock
}

var _ Unmarshaler = (*viper.Viper)(nil)

func (m *mockUnmarshaler) Unmarshal(v interface{}, opts ...viper.DecoderConfigOption) error {
	return m.Called(v).Error(0)
}
