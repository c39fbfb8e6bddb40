package mint

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// QRSession drives one QR mint flow: it owns a single-use reference key,
// encodes the deep-link URL a mobile wallet scans, and polls the ledger for
// the transaction the wallet eventually submits.
//
// A session keeps watching after the first hit, using the last seen
// signature as a floor, so several sequential payments against the same
// reference are each reported once.
type QRSession struct {
	ledger    Ledger
	apiURL    string
	interval  time.Duration
	notify    func(solana.Signature)
	reference solana.PublicKey
	log       *zap.Logger

	mu       sync.Mutex
	lastSeen solana.Signature

	done      chan struct{}
	closeOnce sync.Once
}

// NewQRSession creates a session against the transaction-request endpoint at
// apiURL. notify is called once per newly detected transaction.
//
// The reference key is generated here from a throwaway keypair; only the
// public half is kept. A reference must not be reused across sessions, or
// correlation becomes ambiguous against earlier transactions.
func NewQRSession(ledger Ledger, apiURL string, interval time.Duration, notify func(solana.Signature), log *zap.Logger) *QRSession {
	ref := solana.NewWallet()
	defer clear(ref.PrivateKey)

	return &QRSession{
		ledger:    ledger,
		apiURL:    apiURL,
		interval:  interval,
		notify:    notify,
		reference: ref.PublicKey(),
		log:       log,
		done:      make(chan struct{}),
	}
}

// Reference returns the session's reference key.
func (s *QRSession) Reference() solana.PublicKey {
	return s.reference
}

// MintURL returns the Solana Pay transaction-request URL for this session.
// The wallet GETs it for the trust prompt, then POSTs the signer account.
func (s *QRSession) MintURL() string {
	link := s.apiURL + "?reference=" + s.reference.String()
	return "solana:" + url.QueryEscape(link)
}

// QRCode renders the mint URL as a PNG of the given pixel size.
func (s *QRSession) QRCode(size int) ([]byte, error) {
	qr, err := qrcode.New(s.MintURL(), qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return qr.PNG(size)
}

// Start polls the ledger on the session interval until ctx is cancelled or
// Close is called. Each tick is one non-blocking lookup; an empty result is
// the normal waiting state and lookup failures are logged and retried on the
// next tick. Start blocks; run it in its own goroutine.
//
// Stopping the session never aborts a submitted transaction. Submission
// happened on the wallet's side; this loop only observes.
func (s *QRSession) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

func (s *QRSession) poll(ctx context.Context) {
	s.mu.Lock()
	since := s.lastSeen
	s.mu.Unlock()

	sig, err := FindReference(ctx, s.ledger, s.reference, since)
	if err != nil {
		if errors.Is(err, ErrNotFoundYet) {
			return
		}
		s.log.Warn("reference lookup failed",
			zap.String("reference", s.reference.String()),
			zap.Error(err),
		)
		return
	}

	s.mu.Lock()
	s.lastSeen = sig
	s.mu.Unlock()

	s.log.Info("found mint transaction",
		zap.String("reference", s.reference.String()),
		zap.String("signature", sig.String()),
	)
	s.notify(sig)
}

// Close stops the polling loop. Safe to call more than once.
func (s *QRSession) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}
