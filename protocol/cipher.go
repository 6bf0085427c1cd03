package protocol

import (
	"bytes"
	"crypto/aes"
	"crypto/md5"
	"encoding/base64"
)

// Cipher holds the per-device AES-128 key and the wire version that
// governs header framing. It is immutable after construction and safe
// to share read-only across round-trips.
type Cipher struct {
	key     []byte
	version Version
}

// NewCipher validates key length and returns an immutable Cipher.
func NewCipher(key []byte, version Version) (*Cipher, error) {
	if len(key) != 16 {
		return nil, NewError(ErrKeyLength, "", nil)
	}
	owned := make([]byte, 16)
	copy(owned, key)
	return &Cipher{key: owned, version: version}, nil
}

// Encrypt AES-128-ECB encrypts plain with PKCS#7 padding. Under 3.1 the
// ciphertext is base64-wrapped; under 3.3 it is returned raw.
func (c *Cipher) Encrypt(plain []byte) ([]byte, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, NewError(ErrEncryption, "", err)
	}
	padded := pkcs7Pad(plain, aes.BlockSize)
	out := make([]byte, len(padded))
	newECBEncrypter(block).CryptBlocks(out, padded)

	if c.version == Version31 {
		encoded := make([]byte, base64.StdEncoding.EncodedLen(len(out)))
		base64.StdEncoding.Encode(encoded, out)
		return encoded, nil
	}
	return out, nil
}

// Decrypt strips the version-specific header (if present), base64
// decodes under 3.1, then AES-128-ECB decrypts with PKCS#7 unpadding.
func (c *Cipher) Decrypt(data []byte) ([]byte, error) {
	data = c.stripHeader(data)

	if c.version == Version31 {
		decoded := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
		n, err := base64.StdEncoding.Decode(decoded, data)
		if err != nil {
			return nil, NewError(ErrBase64Decode, "", err)
		}
		data = decoded[:n]
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, NewError(ErrDecryption, "", err)
	}
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return nil, NewError(ErrDecryption, "ciphertext is not a multiple of the block size", nil)
	}
	out := make([]byte, len(data))
	newECBDecrypter(block).CryptBlocks(out, data)

	unpadded, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		return nil, NewError(ErrDecryption, "", err)
	}
	return unpadded, nil
}

// stripHeader removes the version tag + digest/reserved block that
// precedes ciphertext when it's present: 19 bytes under 3.1 (3 version
// + 16 reserved), 15 bytes under 3.3 (3 version + 12 MD5-truncated).
// Data not starting with the version tag is passed through unchanged.
func (c *Cipher) stripHeader(data []byte) []byte {
	tag := c.version.Bytes()
	if len(data) < len(tag) || !bytes.Equal(data[:len(tag)], tag) {
		return data
	}
	switch c.version {
	case Version31:
		if len(data) >= 19 {
			return data[19:]
		}
	case Version33:
		if len(data) >= 15 {
			return data[15:]
		}
	}
	return data
}

// MD5Digest computes the middle 12 bytes of
// MD5("data=" + payload + "||lpv=" + version + "||" + key), the 3.3
// payload header integrity digest.
func (c *Cipher) MD5Digest(payload []byte) []byte {
	h := md5.New()
	h.Write([]byte("data="))
	h.Write(payload)
	h.Write([]byte("||lpv="))
	h.Write(c.version.Bytes())
	h.Write([]byte("||"))
	h.Write(c.key)
	sum := h.Sum(nil)
	return sum[4:16]
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, NewError(ErrDecryption, "padded data is not a multiple of the block size", nil)
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, NewError(ErrDecryption, "invalid PKCS#7 padding", nil)
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, NewError(ErrDecryption, "invalid PKCS#7 padding", nil)
		}
	}
	return data[:len(data)-padLen], nil
}

// DefaultUDPKey is the cipher key used when no per-device key is
// supplied: MD5 of the constant "yGAdlopoPVldABfn".
func DefaultUDPKey() []byte {
	sum := md5.Sum([]byte("yGAdlopoPVldABfn"))
	return sum[:]
}
