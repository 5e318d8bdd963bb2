package services

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/custodia-labs/svcdir/internal/core/domain"
	"github.com/custodia-labs/svcdir/internal/core/ports/driving"
	"github.com/custodia-labs/svcdir/internal/logger"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure ContactService implements the interface.
var _ driving.ContactService = (*ContactService)(nil)

// OpenFunc hands a URL to the host environment.
type OpenFunc func(target string) error

// ContactService hands tel: and mailto: links to the OS URL handler.
type ContactService struct {
	open OpenFunc
}

// NewContactService creates a contact service. A nil opener uses the
// platform's default URL handler.
func NewContactService(open OpenFunc) *ContactService {
	if open == nil {
		open = openURL
	}
	return &ContactService{open: open}
}

// Call opens a tel: link for phone.
func (s *ContactService) Call(_ context.Context, phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("call: %w", domain.ErrNoContact)
	}
	return s.handOff(TelURL(phone))
}

// Email opens a mailto: link for address.
func (s *ContactService) Email(_ context.Context, address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("email: %w", domain.ErrNoContact)
	}
	return s.handOff(MailtoURL(address))
}

func (s *ContactService) handOff(target string) error {
	logger.Debug("Opening %s", target)
	if err := s.open(target); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	return nil
}

// TelURL builds a tel: URL, dropping spaces the way dialers expect.
func TelURL(phone string) string {
	return "tel:" + strings.ReplaceAll(phone, " ", "")
}

// MailtoURL builds a mailto: URL for a single address.
func MailtoURL(address string) string {
	u := url.URL{Scheme: "mailto", Opaque: address}
	return u.String()
}

// openURL opens a URL with the default handler. It does not wait for the
// handler to finish.
func openURL(target string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("open", target)
	case osLinux:
		cmd = exec.Command("xdg-open", target)
	case osWindows:
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
