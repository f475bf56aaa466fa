package terminalui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/yourname/ingest_lite/internal/usecase/uploadflow"
)

const quitCommand = ":q"

// Prompt — интерактивная форма: спрашивает название и путь к файлу, затем отправляет.
// Пустой ввод оставляет текущее значение поля, поэтому неудачную попытку можно повторить как есть.
type Prompt struct {
	In    io.Reader
	Out   io.Writer
	Title *TextField
	File  *FileField
	Flow  uploadflow.Service
}

// Run крутит цикл до EOF, ":q" или отмены контекста и возвращает число успешных загрузок.
func (p *Prompt) Run(ctx context.Context) (int, error) {
	sc := bufio.NewScanner(p.In)
	uploaded := 0

	for {
		if ctx.Err() != nil {
			return uploaded, ctx.Err()
		}

		title, ok := p.ask(sc, "Content name", p.Title.Value())
		if !ok {
			return uploaded, sc.Err()
		}
		if title == quitCommand {
			return uploaded, nil
		}
		if title != "" {
			p.Title.Set(title)
		}

		path, ok := p.ask(sc, "File", p.currentFile())
		if !ok {
			return uploaded, sc.Err()
		}
		if path == quitCommand {
			return uploaded, nil
		}
		if path != "" {
			if err := p.File.Select(path); err != nil {
				// прежний выбор не отправляем под новым названием
				fmt.Fprintf(p.Out, "cannot use %s: %v\n", path, err)
				continue
			}
		}

		if out := p.Flow.Submit(ctx); out.OK() {
			uploaded++
		}
	}
}

func (p *Prompt) ask(sc *bufio.Scanner, label, current string) (string, bool) {
	if current != "" {
		fmt.Fprintf(p.Out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(p.Out, "%s: ", label)
	}
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

func (p *Prompt) currentFile() string {
	if m := p.File.Selected(); m != nil {
		return m.FileName
	}
	return ""
}
