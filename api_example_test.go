package sha256_test

import (
	"fmt"

	"github.com/zeebo/sha256"
)

func ExampleNew() {
	h := sha256.New()

	h.Write([]byte("hello "))
	h.Write([]byte("world"))

	fmt.Printf("%x\n", h.Sum(nil))
	//output:
	// b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9
}

func ExampleSum256() {
	fmt.Printf("%x\n", sha256.Sum256([]byte("abc")))
	//output:
	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}

func ExampleSumHex256() {
	fmt.Println(sha256.SumHex256(nil))
	//output:
	// e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855
}
