// Package buildinfo хранит сведения о сборке: версию, дату и хеш коммита.
// Значения задаются через -ldflags "-X main.buildVersion=...".
package buildinfo

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

const notAvailable = "N/A"

// Info содержит информацию о сборке приложения
type Info struct {
	Version string
	Date    string
	Commit  string
}

// New создает Info, заменяя незаданные значения на "N/A"
func New(version, date, commit string) *Info {
	return &Info{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Print выводит информацию о сборке в w
func (i *Info) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		i.Version, i.Date, i.Commit)
	return err
}

// Fields возвращает поля для структурного лога
func (i *Info) Fields() []zap.Field {
	return []zap.Field{
		zap.String("version", i.Version),
		zap.String("build_date", i.Date),
		zap.String("commit", i.Commit),
	}
}

// String возвращает строковое представление информации о сборке
func (i *Info) String() string {
	return fmt.Sprintf("Version: %s, Date: %s, Commit: %s", i.Version, i.Date, i.Commit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
