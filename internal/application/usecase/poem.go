// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/tesso57/poemgen/internal/domain/poem"
)

const (
	fallbackGenerationError = "Failed to generate poem"
	fallbackTransportError  = "An error occurred"
)

// PoemGenerator abstracts the remote generation backend.
type PoemGenerator interface {
	Generate(ctx context.Context, req poem.Request) (poem.Response, error)
	Health(ctx context.Context) (string, error)
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// FileWriter stores a named file and returns where it was written.
type FileWriter interface {
	WriteFile(name string, data []byte) (string, error)
}

// GenerationError is returned when the backend answers with success=false.
type GenerationError struct {
	Message string
}

func (e *GenerationError) Error() string {
	if e.Message == "" {
		return fallbackGenerationError
	}
	return e.Message
}

// MessageCarrier is implemented by transport errors that carry a server-provided message.
type MessageCarrier interface {
	ServerMessage() string
}

// PoemService coordinates poem generation, copying and downloading.
type PoemService struct {
	Generator PoemGenerator
	Clipboard Clipboard
	Files     FileWriter
}

// NewPoemService constructs a PoemService.
func NewPoemService(generator PoemGenerator, clipboard Clipboard, files FileWriter) *PoemService {
	return new(PoemService{
		Generator: generator,
		Clipboard: clipboard,
		Files:     files,
	})
}

// Generate validates req and requests one poem from the backend.
// The returned text is exactly what the backend produced.
func (s *PoemService) Generate(ctx context.Context, req poem.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if s == nil || s.Generator == nil {
		return "", errors.New("poem generator is not configured")
	}

	resp, err := s.Generator.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &GenerationError{Message: strings.TrimSpace(resp.Error)}
	}
	return resp.Poem, nil
}

// Health probes the backend root endpoint.
func (s *PoemService) Health(ctx context.Context) (string, error) {
	if s == nil || s.Generator == nil {
		return "", errors.New("poem generator is not configured")
	}
	return s.Generator.Health(ctx)
}

// Copy places text on the clipboard.
func (s *PoemService) Copy(text string) error {
	if s == nil || s.Clipboard == nil {
		return errors.New("clipboard is not configured")
	}
	return s.Clipboard.WriteText(text)
}

// Download saves text as poem-<slug>.txt and returns the written path.
func (s *PoemService) Download(theme, text string) (string, error) {
	if s == nil || s.Files == nil {
		return "", errors.New("download directory is not configured")
	}
	return s.Files.WriteFile(FileName(theme), []byte(text))
}

// FileName returns the download name for theme with path separators neutralized.
func FileName(theme string) string {
	name := poem.DownloadFilename(theme)
	return strings.NewReplacer("/", "-", `\`, "-").Replace(name)
}

// ErrorMessage returns the user-facing text for a generation failure.
// Server-provided messages win, then the error's own text, then a generic fallback.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Error()
	}

	var carrier MessageCarrier
	if errors.As(err, &carrier) {
		if msg := strings.TrimSpace(carrier.ServerMessage()); msg != "" {
			return msg
		}
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallbackTransportError
}
