package reminder

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// Popup is an in-app reminder card, the fallback that always works.
type Popup struct {
	Title   string
	Message string
}

// PopupSink receives fallback popups. The TUI feeds them into its popup
// stack; the default sink prints a card to stderr.
type PopupSink interface {
	Show(p Popup)
}

// Notifier is the production Dispatcher. Every dispatch first tries to play
// the alert sound, then raises an OS notification, then falls back to the
// popup sink. Sound and notification failures are logged and swallowed.
type Notifier struct {
	soundPath string

	// runner executes external commands; tests swap it out.
	runner func(name string, args ...string) error

	// Logf records degraded behavior. Defaults to log.Printf.
	Logf func(format string, args ...any)

	probeOnce    sync.Once
	soundPlayer  string
	notifyBinary string

	mu   sync.Mutex
	sink PopupSink
}

// NewNotifier builds a notifier that plays the sound at soundPath (ignored
// when the file is missing) and falls back to stderr popups until a sink is
// attached.
func NewNotifier(soundPath string) *Notifier {
	return &Notifier{
		soundPath: soundPath,
		runner:    runCommand,
		Logf:      log.Printf,
		sink:      writerSink{},
	}
}

// SetSink swaps the popup destination, e.g. once the TUI program is running.
func (n *Notifier) SetSink(sink PopupSink) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if sink != nil {
		n.sink = sink
	}
}

// Dispatch delivers one reminder through the fallback chain.
func (n *Notifier) Dispatch(title, message string) {
	n.probeOnce.Do(n.probe)

	n.playSound()

	if n.notifyBinary != "" {
		name, args := notifyCommand(n.notifyBinary, title, message)
		err := n.runner(name, args...)
		if err == nil {
			return
		}
		n.Logf("os notification failed: %v", err)
	}

	n.mu.Lock()
	sink := n.sink
	n.mu.Unlock()
	sink.Show(Popup{Title: title, Message: message})
}

// probe checks once which platform tools are available. This mirrors the
// one-time permission request: capability is established lazily on first
// dispatch and reused for the rest of the session.
func (n *Notifier) probe() {
	if n.soundPath != "" {
		if _, err := os.Stat(n.soundPath); err == nil {
			if player, err := lookPath(soundPlayerName()); err == nil {
				n.soundPlayer = player
			}
		}
	}
	if binary, err := lookPath(notifyBinaryName()); err == nil {
		n.notifyBinary = binary
	}
}

func (n *Notifier) playSound() {
	n.mu.Lock()
	player := n.soundPlayer
	n.mu.Unlock()
	if player == "" {
		return
	}

	if err := n.runner(player, n.soundPath); err != nil {
		n.Logf("sound play failed: %v", err)
		// Playback is a lost cause for this session; stop retrying.
		n.mu.Lock()
		n.soundPlayer = ""
		n.mu.Unlock()
	}
}

func soundPlayerName() string {
	if runtime.GOOS == "darwin" {
		return "afplay"
	}
	return "paplay"
}

func notifyBinaryName() string {
	if runtime.GOOS == "darwin" {
		return "osascript"
	}
	return "notify-send"
}

// notifyCommand builds the platform notification invocation for an already
// resolved binary path.
func notifyCommand(binary, title, message string) (string, []string) {
	if strings.HasSuffix(binary, "osascript") {
		script := fmt.Sprintf(
			`display notification "%s" with title "%s"`,
			escapeAppleScript(message),
			escapeAppleScript(title),
		)
		return binary, []string{"-e", script}
	}
	return binary, []string{title, message}
}

func escapeAppleScript(text string) string {
	text = strings.ReplaceAll(text, "\\", "\\\\")
	text = strings.ReplaceAll(text, "\"", "\\\"")
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	return text
}

func runCommand(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// writerSink prints popup cards to stderr so reminders are never lost even
// without a TUI attached.
type writerSink struct{}

func (writerSink) Show(p Popup) {
	fmt.Fprintf(os.Stderr, "\n[%s] %s\n", p.Title, p.Message)
}
