package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/hangman/internal/game"
)

const guessPrompt = "> "

// Model is the Bubble Tea model driving a hangman session. It owns the only
// game.State and replaces it after every transition.
type Model struct {
	state  game.State
	logger *log.Logger
	clock  quartz.Clock

	// manual word entry
	wordInput textinput.Model

	roundStarted time.Time
	roundTime    time.Duration
	badChoice    bool
	quitting     bool
}

// NewModel creates a model for an already constructed state.
func NewModel(state game.State, logger *log.Logger, clock quartz.Clock) *Model {
	ti := textinput.New()
	ti.CharLimit = 100
	ti.Prompt = guessPrompt
	ti.Focus()

	return &Model{
		state:     state,
		logger:    logger.WithPrefix("tui"),
		clock:     clock,
		wordInput: ti,
	}
}

// State returns the current game state.
func (m *Model) State() game.State {
	return m.state
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	m.logger.Debug("Session started", m.state.Fields()...)
	if m.state.IsOver() {
		m.quitting = true
		return tea.Quit
	}
	return textinput.Blink
}

// Update feeds key presses into the state machine.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.wordInput, cmd = m.wordInput.Update(msg)
		return m, cmd
	}

	if key.Type == tea.KeyCtrlC {
		m.logger.Info("Interrupted", "rounds_played", m.state.RoundsPlayed(), "score", m.state.Score())
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state.Scene().(type) {
	case game.Init:
		return m, m.updateInit(key)
	case game.AwaitingGuess:
		return m, m.updateGuess(key)
	case game.RoundEnd:
		return m, m.updateRoundEnd(key)
	case game.GameEnd:
		m.quitting = true
		return m, tea.Quit
	default:
		panic(fmt.Sprintf("unhandled scene %s", m.state.Scene()))
	}
}

func (m *Model) updateInit(key tea.KeyMsg) tea.Cmd {
	switch m.state.Mode().(type) {
	case game.ManualMode:
		if key.Type != tea.KeyEnter {
			var cmd tea.Cmd
			m.wordInput, cmd = m.wordInput.Update(key)
			return cmd
		}
		word := m.wordInput.Value()
		if strings.TrimSpace(word) == "" {
			return nil
		}
		m.wordInput.Reset()
		return m.apply(m.state.StartManualGame(word))

	case game.RandomMode:
		if key.Type != tea.KeyEnter {
			return nil
		}
		return m.apply(m.state.StartRandomGame())
	}
	return nil
}

func (m *Model) updateGuess(key tea.KeyMsg) tea.Cmd {
	r, ok := keyRune(key)
	if !ok {
		return nil
	}
	return m.apply(m.state.MakeGuess(r))
}

func (m *Model) updateRoundEnd(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "y", "Y", "enter":
		return m.apply(m.state.NewRound())
	case "n", "N", "esc":
		return m.apply(m.state.EndGame(game.ManuallyEnded))
	default:
		m.badChoice = true
		return nil
	}
}

// keyRune extracts the character typed by a single key press.
func keyRune(key tea.KeyMsg) (rune, bool) {
	if key.Alt {
		return 0, false
	}
	switch key.Type {
	case tea.KeySpace:
		return ' ', true
	case tea.KeyRunes:
		if len(key.Runes) == 1 {
			return key.Runes[0], true
		}
	}
	return 0, false
}

func (m *Model) apply(next game.State) tea.Cmd {
	prev := m.state
	m.state = next
	m.badChoice = false
	m.logger.Debug("Scene transition", next.Fields()...)

	switch scene := next.Scene().(type) {
	case game.AwaitingGuess:
		if _, ok := prev.Scene().(game.Init); ok {
			m.roundStarted = m.clock.Now()
			m.logger.Info("Round started", "round", next.RoundsPlayed(), "letters", game.LettersOf(scene.Word).Len())
		}
	case game.RoundEnd:
		m.roundTime = m.clock.Now().Sub(m.roundStarted)
		m.logger.Info("Round finished",
			"won", scene.Won,
			"round_score", scene.RoundScore,
			"score", next.Score(),
			"duration", m.roundTime)
	case game.GameEnd:
		m.logger.Info("Game over",
			"reason", scene.Reason,
			"rounds_played", next.RoundsPlayed(),
			"score", next.Score())
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// View renders the current scene.
func (m *Model) View() string {
	if m.state.IsOver() {
		return m.renderGameEnd()
	}
	if m.quitting {
		return ""
	}

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("Hangman"))
	content.WriteString("\n\n")

	switch scene := m.state.Scene().(type) {
	case game.Init:
		content.WriteString(m.renderInit())
	case game.AwaitingGuess:
		content.WriteString(m.renderGuess(scene))
	case game.RoundEnd:
		content.WriteString(m.renderRoundEnd(scene))
	}

	content.WriteString("\n")
	content.WriteString(InfoStyle.Render("Ctrl+C to quit"))
	content.WriteString("\n")
	return content.String()
}

func (m *Model) renderInit() string {
	var b strings.Builder
	firstRound := m.state.RoundsPlayed() == 0

	switch m.state.Mode().(type) {
	case game.ManualMode:
		if firstRound {
			b.WriteString(TitleStyle.Render("Manual mode"))
		} else {
			b.WriteString("Time for another round!")
		}
		b.WriteString("\n\nEnter your word or phrase:\n")
		b.WriteString(guessPrompt)
		b.WriteString(FormatWord(m.wordInput.Value(), 0, false))
		b.WriteString("\n")

	case game.RandomMode:
		if firstRound {
			b.WriteString(TitleStyle.Render("Random mode"))
			b.WriteString("\n")
			fmt.Fprintf(&b, "%d words and phrases matching your criteria were found", m.state.UnplayedCount())
		} else {
			b.WriteString("Time for another round!")
		}
		b.WriteString("\n\nPress enter to start\n")
	}
	return b.String()
}

func (m *Model) renderBoard(word string, guessed game.LetterSet) string {
	var b strings.Builder
	b.WriteString(GallowsStyle.Render(Gallows(m.state.WrongGuesses(), int(game.MaxWrongGuesses(m.state.Mode())))))
	b.WriteString("\n\n")
	b.WriteString("Phrase:      ")
	b.WriteString(PhraseStyle.Render(FormatWord(word, guessed, true)))
	b.WriteString("\n\n")
	b.WriteString("Guesses:     ")
	b.WriteString(FormatGuesses(word, guessed))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderGuess(scene game.AwaitingGuess) string {
	var b strings.Builder

	switch scene.Feedback.Kind {
	case game.LetsGo:
		b.WriteString("Let's hang some men!")
	case game.Correct:
		b.WriteString(guessPrompt + string(scene.Feedback.Letter) + "\n")
		b.WriteString(SuccessStyle.Render("Correct"))
	case game.Wrong:
		b.WriteString(guessPrompt + string(scene.Feedback.Letter) + "\n")
		b.WriteString(ErrorStyle.Render("Wrong!"))
	case game.AlreadyTried:
		b.WriteString(WarningStyle.Render(fmt.Sprintf("You already tried '%c'!", scene.Feedback.Letter)))
	case game.BadChar:
		b.WriteString(WarningStyle.Render("Please enter a letter (A - Z)"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderBoard(scene.Word, scene.Guessed))
	fmt.Fprintf(&b, "Wrong guesses left: %d\n\n", m.state.LeftGuesses())
	b.WriteString(guessPrompt)
	return b.String()
}

func (m *Model) renderRoundEnd(scene game.RoundEnd) string {
	var b strings.Builder
	b.WriteString(m.renderBoard(scene.Word, scene.Guessed))
	b.WriteString("\n")

	if scene.Won {
		b.WriteString(SuccessStyle.Render("You won!"))
		fmt.Fprintf(&b, "\nPhrase is:     %s\n", scene.Word)
	} else {
		b.WriteString(ErrorStyle.Render("You lost!"))
		fmt.Fprintf(&b, "\nPhrase was:    %s\n", scene.Word)
	}

	fmt.Fprintf(&b, "\nRound score:   %.0f\n", scene.RoundScore)
	fmt.Fprintf(&b, "Total score:   %.0f\n", m.state.Score())
	fmt.Fprintf(&b, "Round time:    %s\n", m.roundTime.Round(time.Second))
	b.WriteString("\nPlay another round? [y]es / [n]o\n")
	if m.badChoice {
		b.WriteString(WarningStyle.Render("Please enter 'y' for yes, or 'n' for no"))
		b.WriteString("\n")
	}
	b.WriteString(guessPrompt)
	return b.String()
}

func (m *Model) renderGameEnd() string {
	var b strings.Builder
	scene := m.state.Scene().(game.GameEnd)

	switch scene.Reason {
	case game.NoWordsFound:
		b.WriteString("Unfortunately there were no words matching your criteria :(")
	case game.NoMoreWordsFound:
		b.WriteString("Unfortunately we ran out of words matching your criteria! :(")
	case game.ManuallyEnded:
		b.WriteString("Goodbye then! <3")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Rounds played:  %d\n", m.state.RoundsPlayed())
	fmt.Fprintf(&b, "Final score:    %.0f\n", m.state.Score())
	return b.String()
}
