// Command walletsign signs a login nonce with a hex private key, so the auth
// flow can be exercised with curl during development.
//
//	walletsign -key <hex> -nonce <nonce>
//	walletsign -generate
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/limbo/vital/pkg/walletsig"
)

func main() {
	keyHex := flag.String("key", "", "hex encoded secp256k1 private key")
	nonce := flag.String("nonce", "", "nonce returned by /api/auth/nonce")
	generate := flag.Bool("generate", false, "print a fresh key and its address")
	flag.Parse()

	if *generate {
		key, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			log.Fatal("generating key error: " + err.Error())
		}
		fmt.Println("key:    ", hex.EncodeToString(key.Serialize()))
		fmt.Println("address:", walletsig.PubkeyToAddress(key.PubKey()))
		return
	}

	if *keyHex == "" || *nonce == "" {
		flag.Usage()
		log.Fatal("both -key and -nonce are required")
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(*keyHex, "0x"))
	if err != nil || len(raw) != 32 {
		log.Fatal("key must be 32 bytes of hex")
	}
	key := secp256k1.PrivKeyFromBytes(raw)
	fmt.Println("address:  ", walletsig.PubkeyToAddress(key.PubKey()))
	fmt.Println("signature:", walletsig.SignMessage(key, *nonce))
}
