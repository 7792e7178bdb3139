package mocks

import (
	"github.com/stretchr/testify/mock"

	"periphfake/hal"
)

// SPI is a double for hal.SPI.
type SPI struct {
	mock.Mock
}

var _ hal.SPI = (*SPI)(nil)

// NewSPI returns an SPI double with no expectations.
func NewSPI() *SPI {
	return &SPI{}
}

func (s *SPI) Begin() {
	invoke(&s.Mock, "Begin")
}

func (s *SPI) End() {
	invoke(&s.Mock, "End")
}

func (s *SPI) BeginTransaction(settings hal.SPISettings) {
	invoke(&s.Mock, "BeginTransaction", settings)
}

func (s *SPI) EndTransaction() {
	invoke(&s.Mock, "EndTransaction")
}

func (s *SPI) Transfer(data byte) byte {
	return result[byte](invoke(&s.Mock, "Transfer", data), "Transfer", 0)
}

func (s *SPI) Transfer16(data uint16) uint16 {
	return result[uint16](invoke(&s.Mock, "Transfer16", data), "Transfer16", 0)
}

// TransferBuffer records buf as sent. Stub it with Run to fill in the
// received bytes.
func (s *SPI) TransferBuffer(buf []byte) {
	invoke(&s.Mock, "TransferBuffer", buf)
}
