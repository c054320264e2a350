// Package videostore davetiye oluşturan oturumun yüklediği tanıtım videosunu
// oturum süresince bellekte tutar. Hem kayıt sayısı hem toplam boyut sınırlıdır.
package videostore

import (
	"encoding/hex"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/crypto/blake2b"
)

var (
	ErrEmptyVideo    = errors.New("video file is empty")
	ErrVideoTooLarge = errors.New("video file is too large")
	ErrNotVideo      = errors.New("file is not a video")
)

// Config depo sınırları.
type Config struct {
	MaxEntries    int           // aynı anda tutulacak en fazla video
	MaxBytes      int64         // tüm videoların toplam boyut üst sınırı
	MaxVideoBytes int64         // tek bir videonun boyut üst sınırı
	TTL           time.Duration // oturum süresi ile aynı tutulmalı
}

// Video depodaki tek kayıt.
type Video struct {
	ID          string
	Filename    string
	ContentType string
	Data        []byte
	ETag        string
	StoredAt    time.Time
}

// Size videonun byte cinsinden boyutu.
func (v *Video) Size() int64 { return int64(len(v.Data)) }

// Store eşzamanlı kullanıma uygundur.
type Store struct {
	cfg   Config
	cache *expirable.LRU[string, *Video]
	bytes atomic.Int64
}

// New verilen sınırlarla boş bir depo oluşturur.
func New(cfg Config) *Store {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = 32
	}
	if cfg.MaxVideoBytes <= 0 {
		cfg.MaxVideoBytes = 50 << 20
	}
	if cfg.MaxBytes < cfg.MaxVideoBytes {
		cfg.MaxBytes = cfg.MaxVideoBytes
	}
	s := &Store{cfg: cfg}
	// Silme, taşma ve süre dolumu aynı geri çağırımdan geçer; toplam boyut burada düşülür.
	s.cache = expirable.NewLRU[string, *Video](cfg.MaxEntries, func(_ string, v *Video) {
		s.bytes.Add(-v.Size())
	}, cfg.TTL)
	return s
}

// Put videoyu saklar ve yeni kimliğini döndürür. Gerekirse en eski kayıtlar atılır.
func (s *Store) Put(v Video) (string, error) {
	if len(v.Data) == 0 {
		return "", ErrEmptyVideo
	}
	if v.Size() > s.cfg.MaxVideoBytes {
		return "", ErrVideoTooLarge
	}

	if v.ContentType != "" && !strings.HasPrefix(v.ContentType, "video/") {
		return "", ErrNotVideo
	}

	v.ID = uuid.NewString()
	v.ETag = digest(v.Data)
	v.StoredAt = time.Now().UTC()
	if v.ContentType == "" {
		v.ContentType = "video/mp4"
	}

	for s.bytes.Load()+v.Size() > s.cfg.MaxBytes {
		if _, _, ok := s.cache.RemoveOldest(); !ok {
			break
		}
	}
	s.bytes.Add(v.Size())
	s.cache.Add(v.ID, &v)
	return v.ID, nil
}

// Get kimliğe ait videoyu döndürür; süresi dolmuş veya atılmışsa false.
func (s *Store) Get(id string) (*Video, bool) {
	if id == "" {
		return nil, false
	}
	return s.cache.Get(id)
}

// Delete videoyu depodan çıkarır.
func (s *Store) Delete(id string) bool {
	if id == "" {
		return false
	}
	return s.cache.Remove(id)
}

// MaxVideoBytes tek bir video için kabul edilen en büyük boyut.
func (s *Store) MaxVideoBytes() int64 { return s.cfg.MaxVideoBytes }

// Len depodaki video sayısı.
func (s *Store) Len() int { return s.cache.Len() }

// Bytes depodaki videoların toplam boyutu.
func (s *Store) Bytes() int64 { return s.bytes.Load() }

func digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}
