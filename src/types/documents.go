package types

// documents.go defines the JSON objects the binaries print on stdout. Field
// names and radices are part of the wire contract consumed by the enclosing
// website: RSA key material and curve coefficients are decimal strings,
// scalars, coordinates, and ciphertext are unprefixed lowercase hex.

// ErrorDocument is the single-field failure payload. Every failed
// invocation prints one of these and exits nonzero.
type ErrorDocument struct {
	Error string `json:"error"`
}

// RSAKeyDocument is one half of an RSA key pair, all decimal.
type RSAKeyDocument struct {
	N string `json:"n"`
	E string `json:"e,omitempty"`
	D string `json:"d,omitempty"`
}

// RSAKeyPairDocument is the output of key generation.
type RSAKeyPairDocument struct {
	PublicKey  RSAKeyDocument `json:"publicKey"`
	PrivateKey RSAKeyDocument `json:"privateKey"`
}

// RSAEncryptDocument is the output of encryption. Encrypted is hex,
// OriginalNumber is the decimal integer form of the message.
type RSAEncryptDocument struct {
	Success        bool   `json:"success"`
	Encrypted      string `json:"encrypted"`
	OriginalNumber string `json:"originalNumber"`
	OriginalText   string `json:"originalText"`
}

// RSADecryptDocument is the output of decryption. DecryptedText appears
// only when every recovered byte is printable.
type RSADecryptDocument struct {
	Success         bool   `json:"success"`
	DecryptedNumber string `json:"decryptedNumber"`
	DecryptedText   string `json:"decryptedText,omitempty"`
}

// PointDocument is an affine point with hex coordinates. The group
// identity serializes as x="0", y="0"; curve validation rejects parameter
// sets where that pair is a real curve point.
type PointDocument struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// CurveDocument echoes the curve parameters of an ECDH run: coefficients
// and modulus decimal, generator coordinates hex.
type CurveDocument struct {
	A         string        `json:"a"`
	B         string        `json:"b"`
	M         string        `json:"m"`
	Generator PointDocument `json:"generator"`
}

// PartyDocument is one participant's key material: private scalar and
// public point, all hex.
type PartyDocument struct {
	PrivateKey string        `json:"privateKey"`
	PublicKey  PointDocument `json:"publicKey"`
}

// ECDHGenerateDocument is the output of the generate action.
type ECDHGenerateDocument struct {
	Success bool          `json:"success"`
	Action  string        `json:"action"`
	Curve   CurveDocument `json:"curve"`
	Alice   PartyDocument `json:"alice"`
	Bob     PartyDocument `json:"bob"`
}

// ECDHExchangeDocument is the output of the exchange action: both parties,
// the cross-checked shared point, and the derived symmetric key.
type ECDHExchangeDocument struct {
	Success      bool          `json:"success"`
	Action       string        `json:"action"`
	Curve        CurveDocument `json:"curve"`
	Alice        PartyDocument `json:"alice"`
	Bob          PartyDocument `json:"bob"`
	SharedSecret PointDocument `json:"sharedSecret"`
	SharedKey    string        `json:"sharedKey"`
}

// ECDHComputeSharedDocument is the output of the compute_shared action.
type ECDHComputeSharedDocument struct {
	Success      bool          `json:"success"`
	Action       string        `json:"action"`
	SharedSecret PointDocument `json:"sharedSecret"`
	SharedKey    string        `json:"sharedKey"`
}

// ECDHRecoverPointDocument is the output of the recover_point action.
type ECDHRecoverPointDocument struct {
	Success bool          `json:"success"`
	Action  string        `json:"action"`
	Point   PointDocument `json:"point"`
}
