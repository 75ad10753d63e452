package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"moviecatalog/errs"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/pkg/sentry"
)

// MaxLineSize is the longest input line a session accepts.
const MaxLineSize = 1 << 20

var (
	errExit = errors.New("console: exit")

	ErrLineTooLong = errs.Errorf(errs.EINVALID, "input line exceeds %d bytes", MaxLineSize)
)

type command struct {
	key     string
	label   string
	handler func(ctx context.Context) error
}

// Session is one interactive run of the movie menu. It reads answers
// line by line from In and writes prompts and results to Out.
type Session struct {
	// ID identifies the session in logs and error reports
	ID string

	In  io.Reader
	Out io.Writer

	Config *config.Config
	Logger *zap.SugaredLogger

	MovieService movie.Service

	validator *CustomValidator
	reader    *bufio.Reader
	commands  []command
}

func New(options ...Options) (*Session, error) {
	s := Session{
		ID:        uuid.NewString(),
		In:        os.Stdin,
		Out:       os.Stdout,
		Config:    config.Empty,
		Logger:    logger.NOOPLogger,
		validator: NewValidator(),
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	if s.MovieService == nil {
		return nil, errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	s.RegisterMovieCommands()
	s.register("10", "Exit", s.handleExit)
	return &s, nil
}

func (s *Session) register(key, label string, handler func(ctx context.Context) error) {
	s.commands = append(s.commands, command{key: key, label: label, handler: handler})
}

// Run shows the menu until the user exits or input is exhausted. Errors
// returned by commands are reported and never end the session.
func (s *Session) Run(ctx context.Context) error {
	s.reader = bufio.NewReader(s.In)

	hub := sentrygo.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentrygo.Scope) {
		scope.SetTag("session_id", s.ID)
		if s.Config.AppEnv != "" {
			scope.SetTag("app_env", s.Config.AppEnv)
		}
	})
	ctx = sentrygo.SetHubOnContext(ctx, hub)

	log := s.Logger.With("session_id", s.ID, "app_env", s.Config.AppEnv)
	log.Infow("session started")
	defer log.Infow("session finished")

	for {
		s.printMenu()
		choice, err := s.prompt("Choose an option: ")
		if errors.Is(err, io.EOF) {
			s.println("Exiting...")
			return nil
		}
		if errors.Is(err, ErrLineTooLong) {
			s.handleError(ctx, command{label: "menu"}, err)
			continue
		}
		if err != nil {
			return err
		}

		cmd, ok := s.lookup(choice)
		if !ok {
			s.println("Invalid option. Try again.")
			continue
		}

		err = s.dispatch(ctx, cmd)
		switch {
		case err == nil:
		case errors.Is(err, errExit):
			return nil
		case errors.Is(err, io.EOF):
			s.println("Exiting...")
			return nil
		default:
			s.handleError(ctx, cmd, err)
		}
	}
}

func (s *Session) handleExit(context.Context) error {
	s.println("Exiting...")
	return errExit
}

func (s *Session) lookup(key string) (command, bool) {
	for _, cmd := range s.commands {
		if cmd.key == key {
			return cmd, true
		}
	}
	return command{}, false
}

func (s *Session) dispatch(ctx context.Context, cmd command) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("console: panic in %q: %v", cmd.label, r)
		}
	}()
	return cmd.handler(ctx)
}

// handleError maps application errors to the message shown to the user.
// Anything that is not a user error is logged and reported to Sentry.
func (s *Session) handleError(ctx context.Context, cmd command, err error) {
	switch errs.ErrorCode(err) {
	case errs.EINVALID, errs.ENOTFOUND, errs.ECONFLICT:
		s.Logger.Debugw("command rejected",
			"session_id", s.ID,
			"command", cmd.label,
			"error", err,
		)
		s.printf("Error: %s\n", errs.ErrorMessage(err))
	default:
		s.Logger.Errorw("command failed",
			"session_id", s.ID,
			"command", cmd.label,
			"error", err,
		)
		sentry.WithContext(ctx).WithTags(map[string]string{"command": cmd.label}).Error(err)
		s.println("Error: internal error, please try again.")
	}
}

func (s *Session) printMenu() {
	s.println("\nMovie Management System")
	for _, cmd := range s.commands {
		s.printf("%s. %s\n", cmd.key, cmd.label)
	}
}

// prompt returns the next input line without surrounding whitespace, or
// io.EOF once input is exhausted. A line longer than MaxLineSize is
// consumed and reported as ErrLineTooLong.
func (s *Session) prompt(label string) (string, error) {
	s.printf("%s", label)
	line, err := s.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) readLine() (string, error) {
	var (
		line    []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := s.reader.ReadLine()
		if err != nil {
			return "", err
		}
		switch {
		case tooLong:
		case len(line)+len(chunk) > MaxLineSize:
			tooLong = true
			line = nil
		default:
			line = append(line, chunk...)
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", ErrLineTooLong
	}
	return string(line), nil
}

func (s *Session) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.Out, format, args...)
}

func (s *Session) println(msg string) {
	_, _ = fmt.Fprintln(s.Out, msg)
}
