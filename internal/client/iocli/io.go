// Package iocli ввод и вывод командной строки клиента
package iocli

//go:generate moq -out io_mock.go . IO

// IO ввод и вывод для команд CLI. Write позволяет исполнять шаблоны прямо в вывод.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
