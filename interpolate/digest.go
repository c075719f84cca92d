/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package interpolate

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"math/big"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/md4"
)

// DefaultHashType is used when a hash placeholder names no hash type.
const DefaultHashType = "md4"

// baseEncodeTables are the alphabets for the baseN digests.
var baseEncodeTables = map[int]string{
	26: "abcdefghijklmnopqrstuvwxyz",
	32: "123456789abcdefghjkmnpqrstuvwxyz",
	36: "0123456789abcdefghijklmnopqrstuvwxyz",
	49: "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ",
	52: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
	58: "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ",
	62: "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
	64: "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-_",
}

// newHash returns a hash for the given type name.
func newHash(hashType string) (hash.Hash, error) {
	switch strings.ToLower(hashType) {
	case "", "md4":
		return md4.New(), nil
	case "md5":
		return md5.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "sha256":
		return sha256.New(), nil
	case "sha512":
		return sha512.New(), nil
	case "xxhash64":
		return xxhash.New(), nil
	default:
		return nil, fmt.Errorf("unsupported hash type: %s", hashType)
	}
}

// Digest hashes content and encodes the sum with the given digest,
// truncated to maxLength characters when maxLength is positive.
func Digest(content []byte, hashType, digestType string, maxLength int) (string, error) {
	h, err := newHash(hashType)
	if err != nil {
		return "", err
	}
	h.Write(content)
	sum := h.Sum(nil)

	var encoded string
	switch digest := strings.ToLower(digestType); {
	case digest == "" || digest == "hex":
		encoded = hex.EncodeToString(sum)
	case strings.HasPrefix(digest, "base"):
		base, err := strconv.Atoi(strings.TrimPrefix(digest, "base"))
		if err != nil {
			return "", fmt.Errorf("unsupported digest: %s", digestType)
		}
		table, ok := baseEncodeTables[base]
		if !ok {
			return "", fmt.Errorf("unsupported digest: %s", digestType)
		}
		encoded = encodeToBase(sum, table)
	default:
		return "", fmt.Errorf("unsupported digest: %s", digestType)
	}

	if maxLength > 0 && len(encoded) > maxLength {
		encoded = encoded[:maxLength]
	}
	return encoded, nil
}

// encodeToBase reads buf as a little-endian number and writes it with
// the given alphabet, most significant digit first.
func encodeToBase(buf []byte, table string) string {
	n := new(big.Int)
	for i := len(buf) - 1; i >= 0; i-- {
		n.Lsh(n, 8)
		n.Or(n, big.NewInt(int64(buf[i])))
	}

	base := big.NewInt(int64(len(table)))
	rem := new(big.Int)
	var out []byte
	for n.Sign() > 0 {
		n.DivMod(n, base, rem)
		out = append(out, table[rem.Int64()])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
