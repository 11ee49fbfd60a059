// Package proof issues ownership attestations for registry tokens: a
// MiMC commitment binds a token id to its owner under a secret salt,
// and a Groth16 proof demonstrates knowledge of the owner behind a
// commitment without revealing it.
//
// The commitment is MiMC(tokenID, owner, salt) over the BN254 scalar
// field, computed identically in and out of circuit.
package proof

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	frmimc "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/std/hash/mimc"

	"github.com/jmakwana01/NFT-Foundry/identity"
)

// OwnershipCircuit proves knowledge of the owner and salt behind a
// public ownership commitment for a public token id.
type OwnershipCircuit struct {
	TokenID    frontend.Variable `gnark:",public"`
	Commitment frontend.Variable `gnark:",public"`
	Owner      frontend.Variable
	Salt       frontend.Variable
}

// Define enforces Commitment == MiMC(TokenID, Owner, Salt).
func (c *OwnershipCircuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	h.Write(c.TokenID, c.Owner, c.Salt)
	api.AssertIsEqual(c.Commitment, h.Sum())
	return nil
}

// NewSalt returns a fresh random salt as a field element.
func NewSalt() (*big.Int, error) {
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		return nil, err
	}
	return e.BigInt(new(big.Int)), nil
}

// Commit computes the ownership commitment MiMC(tokenID, owner, salt).
func Commit(tokenID uint64, owner identity.Address, salt *big.Int) *big.Int {
	h := frmimc.NewMiMC()

	var e fr.Element
	e.SetUint64(tokenID)
	b := e.Bytes()
	h.Write(b[:])

	e.SetBytes(owner.Bytes())
	b = e.Bytes()
	h.Write(b[:])

	e.SetBigInt(salt)
	b = e.Bytes()
	h.Write(b[:])

	var sum fr.Element
	sum.SetBytes(h.Sum(nil))
	return sum.BigInt(new(big.Int))
}

// Attestation is an ownership proof with its public inputs.
type Attestation struct {
	TokenID    uint64
	Commitment *big.Int
	Proof      groth16.Proof
}

// Attestor compiles the ownership circuit once and issues and checks
// attestations against it.
type Attestor struct {
	cs constraint.ConstraintSystem
	pk groth16.ProvingKey
	vk groth16.VerifyingKey
}

// NewAttestor compiles the ownership circuit and runs setup. This is
// expensive; reuse one attestor for many attestations.
func NewAttestor() (*Attestor, error) {
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &OwnershipCircuit{})
	if err != nil {
		return nil, fmt.Errorf("circuit compilation failed: %w", err)
	}
	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	return &Attestor{cs: cs, pk: pk, vk: vk}, nil
}

// Attest proves that owner (under salt) is behind the commitment for
// tokenID. The commitment must have been produced by Commit with the
// same inputs; otherwise proving fails.
func (a *Attestor) Attest(tokenID uint64, owner identity.Address, salt *big.Int) (*Attestation, error) {
	commitment := Commit(tokenID, owner, salt)
	assignment := &OwnershipCircuit{
		TokenID:    tokenID,
		Commitment: commitment,
		Owner:      new(big.Int).SetBytes(owner.Bytes()),
		Salt:       salt,
	}
	witness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness creation failed: %w", err)
	}
	prf, err := groth16.Prove(a.cs, a.pk, witness)
	if err != nil {
		return nil, fmt.Errorf("proof generation failed: %w", err)
	}
	return &Attestation{TokenID: tokenID, Commitment: commitment, Proof: prf}, nil
}

// Verify checks an attestation against its public inputs.
func (a *Attestor) Verify(att *Attestation) error {
	public := &OwnershipCircuit{
		TokenID:    att.TokenID,
		Commitment: att.Commitment,
	}
	witness, err := frontend.NewWitness(public, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("public witness creation failed: %w", err)
	}
	return groth16.Verify(att.Proof, a.vk, witness)
}
