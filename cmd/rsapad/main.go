// rsapad is a small inspection tool around the padding codecs: it
// builds and parses PKCS #1 v1.5, OAEP, and PSS blocks from hex on the
// command line, which is handy when debugging what an RSA peer actually
// exponentiates.
package main

func main() {
	Execute()
}
