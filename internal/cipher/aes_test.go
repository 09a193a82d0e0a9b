package cipher_test

import (
	"bytes"
	"crypto/aes"
	stdcipher "crypto/cipher"
	"testing"

	"cryptokit/internal/cipher"
)

func TestNewAES128_RoundTrip(t *testing.T) {
	key := []byte("0123456789abcdef")
	iv := []byte("iviviviviviviviv")
	plaintext := []byte("exactly 32 bytes of plaintext!!!")

	enc, err := cipher.NewAES128(key, iv)
	if err != nil {
		t.Fatalf("NewAES128: %v", err)
	}
	ct := make([]byte, len(plaintext))
	enc.CryptBlocks(ct, plaintext)
	if bytes.Equal(ct, plaintext) {
		t.Fatal("ciphertext equals plaintext")
	}

	// Decrypt with an independently built CBC decrypter.
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("aes.NewCipher: %v", err)
	}
	dec := stdcipher.NewCBCDecrypter(block, iv)
	pt := make([]byte, len(ct))
	dec.CryptBlocks(pt, ct)
	if !bytes.Equal(pt, plaintext) {
		t.Fatalf("round-trip mismatch: got %q want %q", pt, plaintext)
	}
}

func TestNewAES128_TruncatesLongKey(t *testing.T) {
	long := []byte("0123456789abcdefEXTRA MATERIAL IGNORED")
	iv := make([]byte, aes.BlockSize)
	plaintext := make([]byte, aes.BlockSize)

	encLong, err := cipher.NewAES128(long, iv)
	if err != nil {
		t.Fatalf("NewAES128 (long key): %v", err)
	}
	encShort, err := cipher.NewAES128(long[:16], iv)
	if err != nil {
		t.Fatalf("NewAES128 (exact key): %v", err)
	}

	ctLong := make([]byte, len(plaintext))
	ctShort := make([]byte, len(plaintext))
	encLong.CryptBlocks(ctLong, plaintext)
	encShort.CryptBlocks(ctShort, plaintext)
	if !bytes.Equal(ctLong, ctShort) {
		t.Fatal("long key not truncated to first 16 bytes")
	}
}

func TestNewAES128_ShortKey_Fails(t *testing.T) {
	iv := make([]byte, aes.BlockSize)
	if _, err := cipher.NewAES128([]byte("too short"), iv); err == nil {
		t.Fatal("expected key-size error for 9-byte key")
	}
}

func TestNewAES128_BadIV_Fails(t *testing.T) {
	key := make([]byte, 16)
	if _, err := cipher.NewAES128(key, make([]byte, 8)); err == nil {
		t.Fatal("expected error for 8-byte iv")
	}
	if _, err := cipher.NewAES128(key, nil); err == nil {
		t.Fatal("expected error for nil iv")
	}
}

func TestNewAES256_RoundTrip(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	iv := []byte("iviviviviviviviv")
	plaintext := []byte("one block here!!")

	enc, err := cipher.NewAES256(key, iv)
	if err != nil {
		t.Fatalf("NewAES256: %v", err)
	}
	ct := make([]byte, len(plaintext))
	enc.CryptBlocks(ct, plaintext)

	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("aes.NewCipher: %v", err)
	}
	dec := stdcipher.NewCBCDecrypter(block, iv)
	pt := make([]byte, len(ct))
	dec.CryptBlocks(pt, ct)
	if !bytes.Equal(pt, plaintext) {
		t.Fatalf("round-trip mismatch: got %q want %q", pt, plaintext)
	}
}

func TestNewAES256_Uses32ByteKey(t *testing.T) {
	key48 := bytes.Repeat([]byte{0xab}, 48)
	iv := make([]byte, aes.BlockSize)
	plaintext := make([]byte, aes.BlockSize)

	encTrunc, err := cipher.NewAES256(key48, iv)
	if err != nil {
		t.Fatalf("NewAES256 (48-byte key): %v", err)
	}
	encExact, err := cipher.NewAES256(key48[:32], iv)
	if err != nil {
		t.Fatalf("NewAES256 (32-byte key): %v", err)
	}

	ct1 := make([]byte, len(plaintext))
	ct2 := make([]byte, len(plaintext))
	encTrunc.CryptBlocks(ct1, plaintext)
	encExact.CryptBlocks(ct2, plaintext)
	if !bytes.Equal(ct1, ct2) {
		t.Fatal("48-byte key not truncated to first 32 bytes")
	}
}

func TestNewGCM_RoundTrip(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	nonce := []byte("12-byte-nonc")
	plaintext := []byte("any length is fine in gcm")

	enc, err := cipher.NewGCM(key, nonce)
	if err != nil {
		t.Fatalf("NewGCM: %v", err)
	}
	ct := enc.Seal(plaintext)
	if len(ct) != len(plaintext)+16 {
		t.Fatalf("ciphertext length %d, want plaintext+16-byte tag", len(ct))
	}

	// Open with an independently built AEAD.
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("aes.NewCipher: %v", err)
	}
	aead, err := stdcipher.NewGCM(block)
	if err != nil {
		t.Fatalf("NewGCM (std): %v", err)
	}
	pt, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Fatalf("round-trip mismatch: got %q want %q", pt, plaintext)
	}
}

func TestNewGCM_BadKeySize_Fails(t *testing.T) {
	if _, err := cipher.NewGCM(make([]byte, 15), make([]byte, 12)); err == nil {
		t.Fatal("expected key-size error for 15-byte key")
	}
}

func TestNewGCM_AcceptsAllAESKeySizes(t *testing.T) {
	for _, n := range []int{16, 24, 32} {
		if _, err := cipher.NewGCM(make([]byte, n), make([]byte, 12)); err != nil {
			t.Fatalf("NewGCM with %d-byte key: %v", n, err)
		}
	}
}
