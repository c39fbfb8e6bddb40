// Package metaplex builds instructions for the Metaplex Token Metadata
// program, which gagliardetto/solana-go does not ship generated bindings for.
package metaplex

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

// ProgramID is the Metaplex Token Metadata program address.
var ProgramID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

// CreateMetadataAccountV3 discriminator in the program's instruction enum.
const createMetadataAccountV3 uint8 = 33

// Creator is an on-chain creator entry with its royalty share.
type Creator struct {
	Address  solana.PublicKey
	Verified bool
	Share    uint8
}

// Collection links an asset to a collection mint.
type Collection struct {
	Verified bool
	Key      solana.PublicKey
}

// Uses describes limited-use semantics for an asset.
type Uses struct {
	UseMethod uint8
	Remaining uint64
	Total     uint64
}

type collectionDetailsV1 struct {
	Size uint64
}

// DataV2 is the borsh layout of the metadata payload.
// Nil pointer fields serialize as borsh Option::None.
type DataV2 struct {
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
	Creators             *[]Creator
	Collection           *Collection
	Uses                 *Uses
}

type createMetadataAccountArgsV3 struct {
	Data              DataV2
	IsMutable         bool
	CollectionDetails *collectionDetailsV1
}

// FindMetadataAddress derives the metadata PDA for a mint. Pure function of
// the mint address given the fixed program id.
func FindMetadataAddress(mintAccount solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte("metadata"),
			ProgramID.Bytes(),
			mintAccount.Bytes(),
		},
		ProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive metadata address: %w", err)
	}
	return addr, nil
}

// NewCreateMetadataAccountV3Instruction builds the instruction creating the
// metadata account for a mint.
func NewCreateMetadataAccountV3Instruction(
	metadata solana.PublicKey,
	mintAccount solana.PublicKey,
	mintAuthority solana.PublicKey,
	payer solana.PublicKey,
	updateAuthority solana.PublicKey,
	data DataV2,
	isMutable bool,
) (solana.Instruction, error) {
	args := createMetadataAccountArgsV3{
		Data:      data,
		IsMutable: isMutable,
	}

	encoded, err := borsh.Serialize(args)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize metadata args: %w", err)
	}

	payload := make([]byte, 0, 1+len(encoded))
	payload = append(payload, createMetadataAccountV3)
	payload = append(payload, encoded...)

	accounts := solana.AccountMetaSlice{
		solana.Meta(metadata).WRITE(),
		solana.Meta(mintAccount),
		solana.Meta(mintAuthority).SIGNER(),
		solana.Meta(payer).WRITE().SIGNER(),
		solana.Meta(updateAuthority),
		solana.Meta(solana.SystemProgramID),
	}

	return solana.NewInstruction(ProgramID, accounts, payload), nil
}
