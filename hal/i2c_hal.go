package hal

// I2CAddress is a 7-bit target address
type I2CAddress uint8

// Transmission results returned by EndTransmission
const (
	I2CSuccess      uint8 = 0
	I2CDataTooLong  uint8 = 1
	I2CNackAddress  uint8 = 2
	I2CNackData     uint8 = 3
	I2COtherError   uint8 = 4
	I2CTimeoutError uint8 = 5
)

// Wire is an I2C controller. Bytes queued with Write are sent by
// EndTransmission; bytes fetched by RequestFrom are consumed through the
// Stream methods, so a Wire is a Stream.
type Wire interface {
	Stream

	Begin()
	End()

	// SetClock sets the bus frequency in Hz
	SetClock(hz uint32)

	// BeginTransmission starts queueing a write to addr
	BeginTransmission(addr I2CAddress)

	// EndTransmission sends the queued bytes. A false stop keeps the bus
	// claimed for a repeated start. Returns one of the I2C* result codes.
	EndTransmission(stop bool) uint8

	// RequestFrom reads up to quantity bytes from addr and returns how many
	// arrived
	RequestFrom(addr I2CAddress, quantity int, stop bool) int
}
