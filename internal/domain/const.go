package domain

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// NATIVE_DECIMALS is the divisibility of the native asset (wei per unit is 10^18)
	NATIVE_DECIMALS = 18

	// MAX_FEE_BASIS_POINTS is the upper bound of the marketplace fee (100%)
	MAX_FEE_BASIS_POINTS = 10000

	// Helios testnet deployment
	DEFAULT_MARKETPLACE_ADDRESS = "0x084724341e07F50782E1c3923D9a6Fb7ce993816"
	DEFAULT_COLLECTION_ADDRESS  = "0xEc94943b75359f1ede3d639AD548e56239d754c2"
	DEFAULT_OFFER_BOOK_ADDRESS  = "0x4e4CA8c653F34b46F7B1DEb8DcEf80852e242bdb"

	// Media storage
	DEFAULT_MEDIA_BUCKET = "nft-images"
)

// HeliosTestnet is the network every session is pinned to unless configured otherwise
var HeliosTestnet = Network{
	ChainID:        42000,
	Name:           "Helios Testnet",
	RPCURL:         "https://testnet1.helioschainlabs.org",
	NativeName:     "Helios",
	NativeSymbol:   "HELIOS",
	NativeDecimals: NATIVE_DECIMALS,
	ExplorerURL:    "https://explorer.helioschainlabs.org",
}
