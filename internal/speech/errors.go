package speech

import "fmt"

// ErrSynthesis indicates the remote backend could not produce audio.
type ErrSynthesis struct {
	StatusCode int
	Err        error
}

func (e *ErrSynthesis) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("speech synthesis failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("speech synthesis failed: %v", e.Err)
}

func (e *ErrSynthesis) Unwrap() error { return e.Err }

// ErrEngineUnavailable indicates a backend cannot run at all on this
// host, for example no synthesizer binary or no API key.
type ErrEngineUnavailable struct {
	Engine string
	Err    error
}

func (e *ErrEngineUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s engine unavailable: %v", e.Engine, e.Err)
	}
	return fmt.Sprintf("%s engine unavailable", e.Engine)
}

func (e *ErrEngineUnavailable) Unwrap() error { return e.Err }
