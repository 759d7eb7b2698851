package crypto

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// EncodeHashRecord renders record as a PHC string:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<digest>
func EncodeHashRecord(record models.PasswordHashRecord) string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		record.Algorithm,
		record.Version,
		record.Params.Memory, record.Params.Time, record.Params.Threads,
		base64.RawStdEncoding.EncodeToString(record.Salt),
		base64.RawStdEncoding.EncodeToString(record.Digest),
	)
}

// ParseHashRecord parses a PHC string produced by [EncodeHashRecord].
// Any structural problem is reported as ErrInvalidRecord.
func ParseHashRecord(encoded string) (models.PasswordHashRecord, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return models.PasswordHashRecord{}, fmt.Errorf("%w: expected 5 '$'-separated fields", ErrInvalidRecord)
	}

	record := models.PasswordHashRecord{Algorithm: parts[1]}

	version, err := parseField(parts[2], "v", 32)
	if err != nil {
		return models.PasswordHashRecord{}, fmt.Errorf("%w: bad version field: %v", ErrInvalidRecord, err)
	}
	record.Version = int(version)

	params := strings.Split(parts[3], ",")
	if len(params) != 3 {
		return models.PasswordHashRecord{}, fmt.Errorf("%w: bad parameters field: want m,t,p", ErrInvalidRecord)
	}
	memory, err := parseField(params[0], "m", 32)
	if err != nil {
		return models.PasswordHashRecord{}, fmt.Errorf("%w: bad parameters field: %v", ErrInvalidRecord, err)
	}
	iterations, err := parseField(params[1], "t", 32)
	if err != nil {
		return models.PasswordHashRecord{}, fmt.Errorf("%w: bad parameters field: %v", ErrInvalidRecord, err)
	}
	threads, err := parseField(params[2], "p", 8)
	if err != nil {
		return models.PasswordHashRecord{}, fmt.Errorf("%w: bad parameters field: %v", ErrInvalidRecord, err)
	}

	p := &record.Params
	p.Memory = uint32(memory)
	p.Time = uint32(iterations)
	p.Threads = uint8(threads)

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return models.PasswordHashRecord{}, fmt.Errorf("%w: bad salt encoding: %v", ErrInvalidRecord, err)
	}
	digest, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return models.PasswordHashRecord{}, fmt.Errorf("%w: bad digest encoding: %v", ErrInvalidRecord, err)
	}

	record.Salt = salt
	record.Digest = digest
	p.KeyLen = uint32(len(digest))

	if err = checkRecord(record); err != nil {
		return models.PasswordHashRecord{}, err
	}

	return record, nil
}

// parseField parses "key=value" where value is a decimal that fits in
// bitSize bits. Signs, spaces and trailing bytes are rejected by ParseUint.
func parseField(field, key string, bitSize int) (uint64, error) {
	k, v, ok := strings.Cut(field, "=")
	if !ok || k != key {
		return 0, fmt.Errorf("expected %s=<n>, got %q", key, field)
	}
	n, err := strconv.ParseUint(v, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("bad %s value %q: %v", key, v, err)
	}
	return n, nil
}
