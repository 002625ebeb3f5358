package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/jonboulle/clockwork"

	"github.com/nPaBwaYT/spn128/commander"
	"github.com/nPaBwaYT/spn128/logging"
)

/*
Шифрование одного блока
go run . encrypt --key=<64 hex> --block=<32 hex>

Расшифрование в раскладке слов исходной реализации
go run . decrypt --key=<64 hex> --block=<32 hex> --byte-order=little

Проверка эталонных векторов и параллельного использования одного шифра
go run . selftest --workers=8 --blocks=4096

Замер скорости
go run . bench --key=<64 hex> --duration=5s
*/

func main() {
	cli := commander.CLI{}
	ctx := kong.Parse(
		&cli,
		kong.Name("spn"),
		kong.Description("128-bit substitution-permutation network block cipher"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Summary:   true,
			Tree:      true,
			FlagsLast: true,
		}),
	)

	logger, err := logging.Provide(logging.Config{
		LogLevel:  cli.LogLevel,
		LogOutput: cli.LogOutput,
	})
	ctx.FatalIfErrorf(err)

	env := &commander.Env{
		Logger: logger,
		Out:    os.Stdout,
		Clock:  clockwork.NewRealClock(),
	}
	ctx.FatalIfErrorf(ctx.Run(env))
}
