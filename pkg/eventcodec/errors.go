package eventcodec

import "errors"

// Kind bir decode hatasının hangi aşamada oluştuğunu belirtir.
type Kind int

const (
	KindInvalidEncoding Kind = iota + 1 // base64 alfabesi dışı karakter / bozuk uzunluk
	KindInvalidBytes                    // byte dizisi UTF-8 değil
	KindInvalidPayload                  // JSON yapısı beklenen şekilde değil
)

func (k Kind) String() string {
	switch k {
	case KindInvalidEncoding:
		return "InvalidEncoding"
	case KindInvalidBytes:
		return "InvalidBytes"
	case KindInvalidPayload:
		return "InvalidPayload"
	default:
		return "Unknown"
	}
}

// DecodeError Decode'un döndürdüğü tek hata tipidir.
type DecodeError struct {
	Kind Kind
	Err  error
}

func newDecodeError(kind Kind, err error) *DecodeError {
	return &DecodeError{Kind: kind, Err: err}
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "eventcodec: " + e.Kind.String()
	}
	return "eventcodec: " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsDecodeError err zincirinde bir *DecodeError varsa true döner.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// KindOf err zincirindeki decode hatasının türünü döndürür, yoksa 0.
func KindOf(err error) Kind {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}
