package mint

import (
	"errors"
	"math/rand"
)

// DefaultMetadataURIs is the fixed catalog of off-chain metadata documents.
// One is picked at random per mint; the documents themselves are never
// fetched or validated here.
var DefaultMetadataURIs = []string{
	"https://raw.githubusercontent.com/solana-developers/opos-asset/main/assets/Climate/metadata.json",
	"https://raw.githubusercontent.com/solana-developers/opos-asset/main/assets/ClosedCube/metadata.json",
	"https://raw.githubusercontent.com/solana-developers/opos-asset/main/assets/CompressedCoil/metadata.json",
	"https://raw.githubusercontent.com/solana-developers/opos-asset/main/assets/CompressedNFT/metadata.json",
	"https://raw.githubusercontent.com/solana-developers/opos-asset/main/assets/Consensus/metadata.json",
	"https://raw.githubusercontent.com/solana-developers/opos-asset/main/assets/DeveloperPortal/metadata.json",
	"https://raw.githubusercontent.com/solana-developers/opos-asset/main/assets/DeveloperToolkit/metadata.json",
	"https://raw.githubusercontent.com/solana-developers/opos-asset/main/assets/GlobalPayments/metadata.json",
	"https://raw.githubusercontent.com/solana-developers/opos-asset/main/assets/OpenCube/metadata.json",
	"https://raw.githubusercontent.com/solana-developers/opos-asset/main/assets/ParallelTransactions/metadata.json",
	"https://raw.githubusercontent.com/solana-developers/opos-asset/main/assets/SagaPhone/metadata.json",
	"https://raw.githubusercontent.com/solana-developers/opos-asset/main/assets/Security/metadata.json",
}

// PickRandomURI selects one URI from the catalog uniformly at random.
// The rng is injected so selection stays reproducible in tests.
func PickRandomURI(catalog []string, rng *rand.Rand) (string, error) {
	if len(catalog) == 0 {
		return "", errors.New("metadata catalog is empty")
	}
	return catalog[rng.Intn(len(catalog))], nil
}
