// Package eventcodec davetiye verisini URL yolunda taşınabilen bir token'a
// çevirir ve geri çözer. Token davetiyenin kendisidir, sunucuda saklanmaz.
package eventcodec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout davetiye tarihinin ISO formatı.
const DateLayout = "2006-01-02"

// ErrInvalidText bir metin alanı geçerli UTF-8 değilse Encode tarafından döner.
var ErrInvalidText = errors.New("eventcodec: metin alanı geçerli UTF-8 değil")

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// base64 çözücü \r ve \n karakterlerini atladığı için alfabe önceden kontrol edilir.
var decodeAlphabet = regexp.MustCompile(`^[A-Za-z0-9+/=_-]*$`)

// EventRecord token içinde taşınan davetiye verisidir.
// Alan sırası serileştirme sırasını belirler, değiştirmeyin.
type EventRecord struct {
	Names       string   `json:"names"`
	HostName    string   `json:"hostName"`
	Date        string   `json:"date"`
	Description string   `json:"description,omitempty"`
	TemplateID  string   `json:"templateId"`
	Gifts       []string `json:"gifts"`
}

// wireRecord decode tarafında eksik alanları ayırt edebilmek için pointer kullanır.
type wireRecord struct {
	Names       *string   `json:"names"`
	HostName    *string   `json:"hostName"`
	Date        *string   `json:"date"`
	Description *string   `json:"description"`
	TemplateID  *string   `json:"templateId"`
	Gifts       *[]string `json:"gifts"`
}

// Encode kaydı kanonik JSON'a, ardından padding'siz base64url token'a çevirir.
// Aynı kayıt her zaman aynı token'ı üretir.
func Encode(rec EventRecord) (string, error) {
	for _, s := range textFields(rec) {
		if !utf8.ValidString(s) {
			return "", ErrInvalidText
		}
	}
	if rec.Gifts == nil {
		rec.Gifts = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return "", fmt.Errorf("eventcodec: kayıt serileştirilemedi: %w", err)
	}
	payload := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	token := base64.StdEncoding.EncodeToString(payload)
	token = strings.NewReplacer("+", "-", "/", "_").Replace(token)
	return strings.TrimRight(token, "="), nil
}

// Decode Encode'un tersidir. Her hata *DecodeError tipindedir; çağıran taraf
// hatanın türüne bakmadan "davetiye yok" olarak ele alabilir.
func Decode(token string) (EventRecord, error) {
	if !decodeAlphabet.MatchString(token) {
		return EventRecord{}, newDecodeError(KindInvalidEncoding, errors.New("token base64 alfabesi dışında karakter içeriyor"))
	}
	b64 := strings.NewReplacer("-", "+", "_", "/").Replace(token)
	if pad := len(b64) % 4; pad != 0 {
		b64 += strings.Repeat("=", 4-pad)
	}

	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return EventRecord{}, newDecodeError(KindInvalidEncoding, err)
	}
	if !utf8.Valid(raw) {
		return EventRecord{}, newDecodeError(KindInvalidBytes, errors.New("geçersiz UTF-8 dizisi"))
	}

	var wire wireRecord
	if err := json.Unmarshal(raw, &wire); err != nil {
		return EventRecord{}, newDecodeError(KindInvalidPayload, err)
	}
	return wire.toRecord()
}

// Valid token'ın yalnızca URL yolu için güvenli karakterler içerip içermediğini söyler.
func Valid(token string) bool {
	return tokenPattern.MatchString(token)
}

func (w wireRecord) toRecord() (EventRecord, error) {
	missing := func(field string) error {
		return newDecodeError(KindInvalidPayload, fmt.Errorf("zorunlu alan eksik: %s", field))
	}
	switch {
	case w.Names == nil || *w.Names == "":
		return EventRecord{}, missing("names")
	case w.HostName == nil || *w.HostName == "":
		return EventRecord{}, missing("hostName")
	case w.Date == nil || *w.Date == "":
		return EventRecord{}, missing("date")
	case w.TemplateID == nil:
		return EventRecord{}, missing("templateId")
	case w.Gifts == nil:
		return EventRecord{}, missing("gifts")
	}
	if _, err := time.Parse(DateLayout, *w.Date); err != nil {
		return EventRecord{}, newDecodeError(KindInvalidPayload, fmt.Errorf("tarih çözümlenemedi: %w", err))
	}

	rec := EventRecord{
		Names:      *w.Names,
		HostName:   *w.HostName,
		Date:       *w.Date,
		TemplateID: *w.TemplateID,
		Gifts:      append([]string{}, *w.Gifts...),
	}
	if w.Description != nil {
		rec.Description = *w.Description
	}
	return rec, nil
}

func textFields(rec EventRecord) []string {
	out := []string{rec.Names, rec.HostName, rec.Date, rec.Description, rec.TemplateID}
	return append(out, rec.Gifts...)
}
