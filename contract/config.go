package contract

// Deployed contract ids on Sui testnet.
const (
	TestnetPackageID  = "0xcde463d95d04c81e56b8997fbd8378b1006897985760e177ee234f82d7cd68ba"
	TestnetRegistryID = "0xe8f02280c428f61e667f10d8493075e376841dbbb09cd6d2b8b12461a9cf2c56"
	TestnetAdminCapID = "0xddb76187a2ecef1c3968a638665829047f156610748759f67441f04f323ec666"
)

// ModuleName is the Move module exposing all Dolphinder entry points.
const ModuleName = "dolphinders"

// Config pins a Builder to a contract deployment.
type Config struct {
	// PackageID is the published Move package object id.
	PackageID string
	// RegistryID is the shared global registry object, passed to entry
	// points that register new top-level objects (profiles, posts).
	RegistryID string
}

// TestnetConfig returns the current testnet deployment.
func TestnetConfig() Config {
	return Config{
		PackageID:  TestnetPackageID,
		RegistryID: TestnetRegistryID,
	}
}

// Builder constructs transaction intents against one contract deployment.
type Builder struct {
	cfg Config
}

func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

func (b *Builder) target(function string) string {
	return b.cfg.PackageID + "::" + ModuleName + "::" + function
}

func (b *Builder) call(function string, args ...CallArg) *Transaction {
	return &Transaction{
		Call: MoveCall{
			Target: b.target(function),
			Args:   args,
		},
	}
}
