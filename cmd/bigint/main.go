// Command bigint is a small CLI front end over the bigint, prime, and
// fibonacci packages: arbitrary-precision arithmetic, primality testing
// and generation, modular exponentiation, and Fibonacci numbers, all from
// the shell.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/zooxyt/libbigint/bigint"
	"github.com/zooxyt/libbigint/fibonacci"
	"github.com/zooxyt/libbigint/prime"
	"github.com/zooxyt/libbigint/x/entropy"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "add", "sub", "mul", "div", "mod":
		runBinaryOp(os.Args[1], os.Args[2:])
	case "pow":
		runPow(os.Args[2:])
	case "powmod":
		runPowMod(os.Args[2:])
	case "random":
		runRandom(os.Args[2:])
	case "prime":
		runPrime(os.Args[2:])
	case "dh":
		runDH(os.Args[2:])
	case "fib":
		runFib(os.Args[2:])
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "bigint: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  bigint add|sub|mul|div|mod A B     arithmetic on two hex integers
  bigint pow BASE EXP                BASE raised to the (non-negative) EXP
  bigint powmod BASE EXP MOD         modular exponentiation
  bigint random BITS                 a random positive integer of at most BITS bits
  bigint prime BITS [ROUNDS]         a probable prime with exactly BITS bits
  bigint dh BITS                     a toy Diffie-Hellman exchange over a generated prime
  bigint fib N                       the N-th Fibonacci number`)
}

func parseOperand(name, s string) *bigint.Int {
	v, err := bigint.ParseHex(s)
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	return v
}

func runBinaryOp(op string, args []string) {
	if len(args) != 2 {
		log.Fatalf("%s: expected exactly two operands", op)
	}
	a := parseOperand("A", args[0])
	b := parseOperand("B", args[1])
	z := bigint.New()

	switch op {
	case "add":
		z.Add(a, b)
	case "sub":
		z.Sub(a, b)
	case "mul":
		z.Mul(a, b)
	case "div":
		if _, err := z.Div(a, b); err != nil {
			log.Fatalf("%s: %v", op, err)
		}
	case "mod":
		if _, err := z.Mod(a, b); err != nil {
			log.Fatalf("%s: %v", op, err)
		}
	}
	fmt.Println(z.String())
}

func runPow(args []string) {
	if len(args) != 2 {
		log.Fatalf("pow: expected BASE EXP")
	}
	base := parseOperand("BASE", args[0])
	exp := parseOperand("EXP", args[1])
	z, err := bigint.New().Pow(base, exp)
	if err != nil {
		log.Fatalf("pow: %v", err)
	}
	fmt.Println(z.String())
}

func runPowMod(args []string) {
	if len(args) != 3 {
		log.Fatalf("powmod: expected BASE EXP MOD")
	}
	base := parseOperand("BASE", args[0])
	exp := parseOperand("EXP", args[1])
	mod := parseOperand("MOD", args[2])
	z := bigint.New()
	if _, err := z.PowMod(base, exp, mod); err != nil {
		log.Fatalf("powmod: %v", err)
	}
	fmt.Println(z.String())
}

func runRandom(args []string) {
	fs := flag.NewFlagSet("random", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		log.Fatalf("random: expected BITS")
	}
	bits := parseInt("BITS", fs.Arg(0))
	v, err := bigint.Random(bits, entropy.Default())
	if err != nil {
		log.Fatalf("random: %v", err)
	}
	fmt.Println(v.String())
}

func runPrime(args []string) {
	fs := flag.NewFlagSet("prime", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() < 1 || fs.NArg() > 2 {
		log.Fatalf("prime: expected BITS [ROUNDS]")
	}
	bits := parseInt("BITS", fs.Arg(0))
	var opts []prime.Option
	if fs.NArg() == 2 {
		opts = append(opts, prime.WithRounds(parseInt("ROUNDS", fs.Arg(1))))
	}
	p, err := prime.GeneratePrime(bits, entropy.Default(), opts...)
	if err != nil {
		log.Fatalf("prime: %v", err)
	}
	fmt.Println(p.String())
}

func runDH(args []string) {
	fs := flag.NewFlagSet("dh", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		log.Fatalf("dh: expected BITS")
	}
	bits := parseInt("BITS", fs.Arg(0))
	src := entropy.Default()

	p, err := prime.GeneratePrime(bits, src)
	if err != nil {
		log.Fatalf("dh: generating prime modulus: %v", err)
	}
	g := bigint.NewFromUint32(2)

	a, err := bigint.Random(bits-1, src)
	if err != nil {
		log.Fatalf("dh: %v", err)
	}
	b, err := bigint.Random(bits-1, src)
	if err != nil {
		log.Fatalf("dh: %v", err)
	}

	A, B := bigint.New(), bigint.New()
	if _, err := A.PowMod(g, a, p); err != nil {
		log.Fatalf("dh: %v", err)
	}
	if _, err := B.PowMod(g, b, p); err != nil {
		log.Fatalf("dh: %v", err)
	}

	secretFromA, secretFromB := bigint.New(), bigint.New()
	if _, err := secretFromA.PowMod(B, a, p); err != nil {
		log.Fatalf("dh: %v", err)
	}
	if _, err := secretFromB.PowMod(A, b, p); err != nil {
		log.Fatalf("dh: %v", err)
	}
	if !secretFromA.Equal(secretFromB) {
		log.Fatalf("dh: shared secrets disagree, this should be unreachable")
	}

	fmt.Printf("p = %s\ng = %s\nA = %s\nB = %s\nshared secret = %s\n",
		p.String(), g.String(), A.String(), B.String(), secretFromA.String())
}

func runFib(args []string) {
	fs := flag.NewFlagSet("fib", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		log.Fatalf("fib: expected N")
	}
	var n uint64
	if _, err := fmt.Sscanf(fs.Arg(0), "%d", &n); err != nil {
		log.Fatalf("fib: invalid N %q: %v", fs.Arg(0), err)
	}
	fmt.Println(fibonacci.Fib(n).String())
}

func parseInt(name, s string) int {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		log.Fatalf("%s: invalid integer %q: %v", name, s, err)
	}
	return n
}
