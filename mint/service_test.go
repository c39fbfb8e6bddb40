package mint

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testService(ledger Ledger) *TransactionService {
	return NewTransactionService(
		ledger,
		ServiceInfo{Label: "NFT Minter", Icon: "https://example.com/icon.svg"},
		DefaultMetadataURIs,
		"OPOS",
		"OPOS",
		zap.NewNop(),
	)
}

func TestDescribe(t *testing.T) {
	svc := testService(workingLedger())

	info := svc.Describe()
	assert.Equal(t, "NFT Minter", info.Label)
	assert.Equal(t, "https://example.com/icon.svg", info.Icon)
}

func TestPrepareMissingInputsNeverContactLedger(t *testing.T) {
	owner := solana.NewWallet().PublicKey().String()
	ref := solana.NewWallet().PublicKey().String()

	cases := []struct {
		name               string
		account, reference string
	}{
		{"missing account", "", ref},
		{"missing reference", owner, ""},
		{"malformed account", "not-a-key", ref},
		{"malformed reference", owner, "not-a-key"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := workingLedger()
			svc := testService(ledger)

			_, err := svc.Prepare(context.Background(), tc.account, tc.reference)
			assert.True(t, IsInvalidRequest(err), "want InvalidRequestError, got %v", err)
			assert.Zero(t, ledger.callCount(), "ledger must not be contacted")
		})
	}
}

func TestPrepareLedgerFailure(t *testing.T) {
	ledger := workingLedger()
	ledger.rentErr = assert.AnError
	svc := testService(ledger)

	_, err := svc.Prepare(
		context.Background(),
		solana.NewWallet().PublicKey().String(),
		solana.NewWallet().PublicKey().String(),
	)
	assert.True(t, IsLedgerError(err), "want LedgerError, got %v", err)
}

func TestPrepareEnvelopeRoundTrip(t *testing.T) {
	ledger := workingLedger()
	svc := testService(ledger)

	owner := solana.NewWallet().PublicKey()
	ref := solana.NewWallet().PublicKey()

	encoded, err := svc.Prepare(context.Background(), owner.String(), ref.String())
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	require.NoError(t, err)

	msg := tx.Message
	require.Len(t, msg.Instructions, 5, "remote path must not include the authority revocation")

	// Fee payer is the requester.
	require.NotEmpty(t, msg.AccountKeys)
	assert.True(t, msg.AccountKeys[0].Equals(owner))
	assert.Equal(t, ledger.blockhash.Hash, msg.RecentBlockhash)

	// The reference appears exactly once, on the first instruction only,
	// as a readonly non-signer.
	refIndex := -1
	for i, key := range msg.AccountKeys {
		if key.Equals(ref) {
			refIndex = i
		}
	}
	require.GreaterOrEqual(t, refIndex, 0, "reference key missing from account keys")

	occurrences := 0
	for i, ix := range msg.Instructions {
		for _, accountIndex := range ix.Accounts {
			if int(accountIndex) == refIndex {
				occurrences++
				assert.Equal(t, 0, i, "reference may only appear on the first instruction")
			}
		}
	}
	assert.Equal(t, 1, occurrences, "reference must appear exactly once")

	numSigners := int(msg.Header.NumRequiredSignatures)
	numReadonlyUnsigned := int(msg.Header.NumReadonlyUnsignedAccounts)
	assert.GreaterOrEqual(t, refIndex, numSigners, "reference must not be a signer")
	assert.GreaterOrEqual(t, refIndex, len(msg.AccountKeys)-numReadonlyUnsigned, "reference must be readonly")

	// Two required signers: the fee payer (still unsigned) and the asset key.
	require.Equal(t, 2, numSigners)
	require.Len(t, tx.Signatures, 2)
	assert.Equal(t, solana.Signature{}, tx.Signatures[0], "payer slot must stay unsigned")
	assert.NotEqual(t, solana.Signature{}, tx.Signatures[1], "asset slot must carry the partial signature")

	// The partial signature verifies against the serialized message.
	msgBytes, err := msg.MarshalBinary()
	require.NoError(t, err)
	assetKey := msg.AccountKeys[1]
	assert.True(t, ed25519.Verify(ed25519.PublicKey(assetKey.Bytes()), msgBytes, tx.Signatures[1][:]))
}

func TestPrepareFreshAssetKeyPerRequest(t *testing.T) {
	ledger := workingLedger()
	svc := testService(ledger)

	owner := solana.NewWallet().PublicKey()
	ref := solana.NewWallet().PublicKey()

	first, err := svc.Prepare(context.Background(), owner.String(), ref.String())
	require.NoError(t, err)
	second, err := svc.Prepare(context.Background(), owner.String(), ref.String())
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each request must allocate its own asset keypair")
}
