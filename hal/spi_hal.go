package hal

// BitOrder selects which bit is shifted out first
type BitOrder uint8

const (
	LSBFirst BitOrder = iota
	MSBFirst
)

// SPIMode represents SPI clock polarity and phase (0-3)
// Mode 0: CPOL=0, CPHA=0 (clock idle low, sample on rising edge)
// Mode 1: CPOL=0, CPHA=1 (clock idle low, sample on falling edge)
// Mode 2: CPOL=1, CPHA=0 (clock idle high, sample on falling edge)
// Mode 3: CPOL=1, CPHA=1 (clock idle high, sample on rising edge)
type SPIMode uint8

const (
	SPIMode0 SPIMode = iota
	SPIMode1
	SPIMode2
	SPIMode3
)

// SPISettings holds the bus parameters of one transaction
type SPISettings struct {
	Clock    uint32 // Clock rate in Hz
	BitOrder BitOrder
	Mode     SPIMode
}

// DefaultSPISettings are used when a transaction does not specify any
var DefaultSPISettings = SPISettings{Clock: 4000000, BitOrder: MSBFirst, Mode: SPIMode0}

// SPI is the abstract SPI bus that firmware code uses.
type SPI interface {
	Begin()
	End()

	// BeginTransaction claims the bus with the given settings
	BeginTransaction(settings SPISettings)
	EndTransaction()

	// Transfer performs a full-duplex single byte exchange
	Transfer(data byte) byte

	// Transfer16 exchanges two bytes in the configured bit order
	Transfer16(data uint16) uint16

	// TransferBuffer sends buf and overwrites it with the received bytes
	TransferBuffer(buf []byte)
}
