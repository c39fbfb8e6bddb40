// Package keystore stores the direct-mint signer keypair on disk, encrypted
// with a password. The address is readable without the password; the private
// key never touches disk in the clear.
package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt parameters: N=2^18 (~256MB RAM) keeps brute force expensive
	// while still working on memory-constrained machines.
	scryptN      = 1 << 18
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12

	fileExt = ".keypair"
)

// File is the on-disk JSON structure.
type File struct {
	Network    string `json:"network"`
	Address    string `json:"address"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// Generate creates a fresh Solana keypair and writes it encrypted to path.
// Returns the public address. Refuses to overwrite a non-empty file.
// password must be []byte for security (caller should zero it after use)
func Generate(path string, password []byte) (string, error) {
	wallet := solana.NewWallet()
	defer clear(wallet.PrivateKey)

	if err := Encrypt(path, wallet.PrivateKey, password); err != nil {
		return "", err
	}
	return wallet.PublicKey().String(), nil
}

// Encrypt writes priv to path encrypted under password.
func Encrypt(path string, priv solana.PrivateKey, password []byte) error {
	if !strings.HasSuffix(path, fileExt) {
		return fmt.Errorf("file must have %s extension", fileExt)
	}
	if len(priv) != 64 {
		return errors.New("invalid private key length: expected 64 bytes")
	}

	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		return fmt.Errorf("file is not empty: %w", os.ErrExist)
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	aesGCM, err := newGCM(password, salt)
	if err != nil {
		return err
	}

	ciphertext := aesGCM.Seal(nil, nonce, priv, nil)

	file := File{
		Network:    "solana",
		Address:    priv.PublicKey().String(),
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal keypair file: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Decrypt reads the keypair file and returns the private key.
// Caller must zero the returned key after use.
func Decrypt(path string, password []byte) (solana.PrivateKey, error) {
	file, err := readFile(path)
	if err != nil {
		return nil, err
	}

	salt, err := base64.StdEncoding.DecodeString(file.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(file.Nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to decode nonce: %w", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(file.CipherText)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	aesGCM, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.New("invalid password")
	}

	if len(plaintext) != 64 {
		clear(plaintext)
		return nil, errors.New("invalid private key length in keypair file")
	}

	address, err := solana.PublicKeyFromBase58(file.Address)
	if err != nil {
		clear(plaintext)
		return nil, fmt.Errorf("invalid address in keypair file: %w", err)
	}

	priv := solana.PrivateKey(plaintext)
	if !priv.PublicKey().Equals(address) {
		clear(plaintext)
		return nil, errors.New("private key does not match stored address")
	}
	return priv, nil
}

// Address reads only the public address from the keypair file, no password needed.
func Address(path string) (string, error) {
	file, err := readFile(path)
	if err != nil {
		return "", err
	}
	return file.Address, nil
}

func readFile(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("keypair file does not exist")
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() == 0 {
		return nil, errors.New("keypair file is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keypair file: %w", err)
	}
	return &file, nil
}

func newGCM(password, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
