package builtin

import (
	"bufio"
	"os"

	"github.com/ondrovic/goschem/internal/escape"
	"github.com/ondrovic/goschem/internal/printer"
	"github.com/ondrovic/goschem/internal/value"
)

func biInputPortP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(v.Tag() == value.InputPort), nil
}

func biOutputPortP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(v.Tag() == value.OutputPort), nil
}

func biCurrentInputPort(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	return it.Stdin(), nil
}

func biCurrentOutputPort(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	return it.Stdout(), nil
}

func biOpenInputFile(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	path, err := NthTyped(it, en, operands, 1, value.String)
	if err != nil {
		return value.Value{}, err
	}
	f, oerr := os.Open(string(path.Bytes()))
	if oerr != nil {
		return value.Value{}, escape.New(escape.IOError, "cannot open input file %q: %v", path.Bytes(), oerr)
	}
	return it.NewPort(&value.PortData{Reader: bufio.NewReader(f), Closer: f}, true), nil
}

func biOpenOutputFile(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	path, err := NthTyped(it, en, operands, 1, value.String)
	if err != nil {
		return value.Value{}, err
	}
	f, oerr := os.Create(string(path.Bytes()))
	if oerr != nil {
		return value.Value{}, escape.New(escape.IOError, "cannot open output file %q: %v", path.Bytes(), oerr)
	}
	return it.NewPort(&value.PortData{Writer: f, Closer: f}, false), nil
}

func biCloseInputPort(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.InputPort)
	if err != nil {
		return value.Value{}, err
	}
	closePort(v)
	return value.Null(), nil
}

func biCloseOutputPort(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.OutputPort)
	if err != nil {
		return value.Value{}, err
	}
	closePort(v)
	return value.Null(), nil
}

func closePort(v value.Value) {
	p := v.PortData()
	if p.Closed || p.IsStdin || p.IsStdout {
		return
	}
	if p.Closer != nil {
		p.Closer.Close()
	}
	p.Closed = true
}

func outputPort(it value.Interp, en value.Env, operands value.Value, n int) (value.Value, error) {
	v, ok, err := NthOptional(it, en, operands, n)
	if err != nil {
		return value.Value{}, err
	}
	if !ok {
		return it.Stdout(), nil
	}
	if v.Tag() != value.OutputPort {
		return value.Value{}, escape.Typef("output-port", v.KindName())
	}
	return v, nil
}

func writeTo(port value.Value, s string) error {
	p := port.PortData()
	if p.Closed {
		return escape.New(escape.IOError, "write to closed port")
	}
	if _, err := p.Writer.WriteString(s); err != nil {
		return escape.New(escape.IOError, "write failed: %v", err)
	}
	return nil
}

func biWrite(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	port, err := outputPort(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	if err := writeTo(port, printer.Write(v)); err != nil {
		return value.Value{}, err
	}
	return value.Null(), nil
}

func biDisplay(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	port, err := outputPort(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	if err := writeTo(port, printer.Display(v)); err != nil {
		return value.Value{}, err
	}
	return value.Null(), nil
}

func biNewline(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	port, err := outputPort(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	if err := writeTo(port, "\n"); err != nil {
		return value.Value{}, err
	}
	return value.Null(), nil
}

func biWriteChar(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	c, err := NthTyped(it, en, operands, 1, value.Character)
	if err != nil {
		return value.Value{}, err
	}
	port, err := outputPort(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	if err := writeTo(port, string(c.Char())); err != nil {
		return value.Value{}, err
	}
	return value.Null(), nil
}
