package mint

import (
	"errors"
	"fmt"

	"github.com/solana-developers/solana-pay-nft-minter/internal/metaplex"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
)

// MintAccountSize is the byte size of an SPL token mint account.
const MintAccountSize = 82

// Params are the inputs to BuildInstructions. RentLamports must be the
// live rent-exempt minimum for MintAccountSize bytes, fetched by the caller.
type Params struct {
	// Owner becomes the mint authority and owns the holder account.
	Owner solana.PublicKey
	// Payer funds the new accounts and pays the transaction fee.
	Payer solana.PublicKey
	// Mint is the public key of the freshly generated asset keypair.
	Mint solana.PublicKey

	Name   string
	Symbol string
	URI    string

	RentLamports uint64

	// RevokeAuthority appends a final instruction setting the mint authority
	// to none so no further units can ever be issued.
	RevokeAuthority bool
}

// BuildInstructions produces the ordered instruction set that creates the
// mint account, initializes it with zero decimals, creates the owner's
// associated token account, issues exactly one unit, and registers an
// immutable metadata record. Each instruction depends on ledger state
// established by the previous one within the same transaction.
//
// Returns 6 instructions when p.RevokeAuthority is set, 5 otherwise.
// Output is deterministic for identical params.
func BuildInstructions(p Params) ([]solana.Instruction, error) {
	if p.Owner.IsZero() || p.Payer.IsZero() || p.Mint.IsZero() {
		return nil, errors.New("owner, payer and mint keys are required")
	}
	if p.URI == "" {
		return nil, errors.New("metadata URI is required")
	}

	// 1) Create the mint account, funded rent-exempt, owned by the token program.
	createMintAccount := system.NewCreateAccountInstruction(
		p.RentLamports,
		MintAccountSize,
		solana.TokenProgramID,
		p.Payer,
		p.Mint,
	).Build()

	// 2) Initialize it as a non-fractional mint. No freeze authority.
	initializeMint := token.NewInitializeMint2InstructionBuilder().
		SetDecimals(0).
		SetMintAuthority(p.Owner).
		SetMintAccount(p.Mint).
		Build()

	// The holder account address is a PDA of (owner, mint). No ledger call.
	holderAccount, _, err := solana.FindAssociatedTokenAddress(p.Owner, p.Mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive holder account address: %w", err)
	}

	// 3) Create the holder (associated token) account at the derived address.
	createHolderAccount := associatedtokenaccount.NewCreateInstruction(
		p.Payer,
		p.Owner,
		p.Mint,
	).Build()

	// 4) Issue exactly one unit to the holder account.
	mintOne := token.NewMintToInstruction(
		1,
		p.Mint,
		holderAccount,
		p.Owner,
		[]solana.PublicKey{},
	).Build()

	// 5) Register the immutable metadata record at its derived address.
	metadataAddress, err := metaplex.FindMetadataAddress(p.Mint)
	if err != nil {
		return nil, err
	}
	createMetadata, err := metaplex.NewCreateMetadataAccountV3Instruction(
		metadataAddress,
		p.Mint,
		p.Owner,
		p.Payer,
		p.Owner,
		metaplex.DataV2{
			Name:                 p.Name,
			Symbol:               p.Symbol,
			URI:                  p.URI,
			SellerFeeBasisPoints: 0,
		},
		false, // isMutable
	)
	if err != nil {
		return nil, err
	}

	instructions := []solana.Instruction{
		createMintAccount,
		initializeMint,
		createHolderAccount,
		mintOne,
		createMetadata,
	}

	if p.RevokeAuthority {
		// 6) Set the mint authority to none. Supply is fixed at one forever.
		revokeAuthority := token.NewSetAuthorityInstructionBuilder().
			SetAuthorityType(token.AuthorityMintTokens).
			SetSubjectAccount(p.Mint).
			SetAuthorityAccount(p.Owner).
			Build()
		instructions = append(instructions, revokeAuthority)
	}

	return instructions, nil
}

// DeriveHolderAccount returns the associated token account address for the
// given owner and mint. Pure function: same inputs, same address.
func DeriveHolderAccount(owner, mintAccount solana.PublicKey) (solana.PublicKey, error) {
	holder, _, err := solana.FindAssociatedTokenAddress(owner, mintAccount)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive holder account address: %w", err)
	}
	return holder, nil
}

// withReference appends ref as a non-signing, non-writable account to the
// instruction so the eventual transaction can be found by looking up
// transactions mentioning ref. The instruction's program and payload are
// untouched; the extra account is ignored by the executing program.
func withReference(ix solana.Instruction, ref solana.PublicKey) (solana.Instruction, error) {
	data, err := ix.Data()
	if err != nil {
		return nil, fmt.Errorf("failed to read instruction data: %w", err)
	}
	accounts := append(solana.AccountMetaSlice{}, ix.Accounts()...)
	accounts = append(accounts, solana.Meta(ref))
	return solana.NewInstruction(ix.ProgramID(), accounts, data), nil
}
