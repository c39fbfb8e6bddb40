package mint

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"
)

// stubLedger is an in-memory Ledger for tests. SignaturesForAddress honors
// the until bound the way the RPC node does: newest first, cut at until.
type stubLedger struct {
	mu sync.Mutex

	rent    uint64
	rentErr error

	blockhash    Blockhash
	blockhashErr error

	height    uint64
	heightErr error

	sendSig solana.Signature
	sendErr error

	sigs    []solana.Signature
	sigsErr error

	sentTxs []*solana.Transaction
	calls   int
}

func (s *stubLedger) MinimumRentForMint(ctx context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.rent, s.rentErr
}

func (s *stubLedger) LatestBlockhash(ctx context.Context) (Blockhash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.blockhash, s.blockhashErr
}

func (s *stubLedger) BlockHeight(ctx context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.height, s.heightErr
}

func (s *stubLedger) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.sendErr != nil {
		return solana.Signature{}, s.sendErr
	}
	s.sentTxs = append(s.sentTxs, tx)
	return s.sendSig, nil
}

func (s *stubLedger) SignaturesForAddress(ctx context.Context, addr solana.PublicKey, until solana.Signature) ([]solana.Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.sigsErr != nil {
		return nil, s.sigsErr
	}
	var out []solana.Signature
	for _, sig := range s.sigs {
		if sig == until {
			break
		}
		out = append(out, sig)
	}
	return out, nil
}

func (s *stubLedger) setSigs(sigs ...solana.Signature) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sigs = sigs
}

func (s *stubLedger) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *stubLedger) lastSent() *solana.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sentTxs) == 0 {
		return nil
	}
	return s.sentTxs[len(s.sentTxs)-1]
}

func sigWithByte(b byte) solana.Signature {
	var sig solana.Signature
	sig[0] = b
	return sig
}

func hashWithByte(b byte) solana.Hash {
	var h solana.Hash
	h[0] = b
	return h
}

// workingLedger returns a stub that lets a full mint attempt go through.
func workingLedger() *stubLedger {
	return &stubLedger{
		rent: 1461600,
		blockhash: Blockhash{
			Hash:                 hashWithByte(7),
			LastValidBlockHeight: 1000,
		},
		height:  500,
		sendSig: sigWithByte(42),
	}
}
