// Package tlsutil loads gRPC server credentials and mints development certificates.
package tlsutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"

	"google.golang.org/grpc/credentials"
)

// ServerCredentials loads gRPC server credentials from a PEM key pair. When
// clientCAFile is set, clients must present a certificate signed by it.
func ServerCredentials(certFile, keyFile, clientCAFile string) (credentials.TransportCredentials, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("tlsutil: load server key pair: %w", err)
	}

	tlsCfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}

	if clientCAFile != "" {
		pool, err := loadPool(clientCAFile)
		if err != nil {
			return nil, err
		}
		tlsCfg.ClientCAs = pool
		tlsCfg.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return credentials.NewTLS(tlsCfg), nil
}

func loadPool(caFile string) (*x509.CertPool, error) {
	caPEM, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("tlsutil: read CA file: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("tlsutil: no certificates in %s", caFile)
	}
	return pool, nil
}

// DevCerts lists the PEM files written by WriteDevCerts.
type DevCerts struct {
	CAFile         string
	ServerCertFile string
	ServerKeyFile  string
	ClientCertFile string
	ClientKeyFile  string
}

// DevCertOptions controls the development PKI. Hosts become the server
// certificate's SANs; ClientName is the client certificate's common name.
type DevCertOptions struct {
	Hosts      []string
	ClientName string
	Validity   time.Duration
}

type issued struct {
	cert *x509.Certificate
	key  *ecdsa.PrivateKey
}

// WriteDevCerts mints a throwaway CA plus a server and a client certificate
// signed by it, enough to run decisiond with TLS_CLIENT_CA_FILE set.
func WriteDevCerts(outDir string, opts DevCertOptions) (DevCerts, error) {
	if len(opts.Hosts) == 0 {
		return DevCerts{}, fmt.Errorf("tlsutil: at least one host is required")
	}
	if opts.Validity <= 0 {
		opts.Validity = 365 * 24 * time.Hour
	}
	if opts.ClientName == "" {
		opts.ClientName = "decisionctl"
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return DevCerts{}, fmt.Errorf("tlsutil: mkdir %s: %w", outDir, err)
	}

	now := time.Now()
	ca, err := issue(&x509.Certificate{
		Subject:               pkix.Name{CommonName: "decisioning dev CA"},
		NotBefore:             now,
		NotAfter:              now.Add(opts.Validity),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}, nil)
	if err != nil {
		return DevCerts{}, fmt.Errorf("tlsutil: CA: %w", err)
	}

	serverTmpl := &x509.Certificate{
		Subject:     pkix.Name{CommonName: opts.Hosts[0]},
		NotBefore:   now,
		NotAfter:    now.Add(opts.Validity),
		KeyUsage:    x509.KeyUsageDigitalSignature,
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	for _, h := range opts.Hosts {
		if ip := net.ParseIP(h); ip != nil {
			serverTmpl.IPAddresses = append(serverTmpl.IPAddresses, ip)
		} else {
			serverTmpl.DNSNames = append(serverTmpl.DNSNames, h)
		}
	}
	server, err := issue(serverTmpl, ca)
	if err != nil {
		return DevCerts{}, fmt.Errorf("tlsutil: server: %w", err)
	}

	client, err := issue(&x509.Certificate{
		Subject:     pkix.Name{CommonName: opts.ClientName},
		NotBefore:   now,
		NotAfter:    now.Add(opts.Validity),
		KeyUsage:    x509.KeyUsageDigitalSignature,
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	}, ca)
	if err != nil {
		return DevCerts{}, fmt.Errorf("tlsutil: client: %w", err)
	}

	out := DevCerts{
		CAFile:         filepath.Join(outDir, "ca.pem"),
		ServerCertFile: filepath.Join(outDir, "server.pem"),
		ServerKeyFile:  filepath.Join(outDir, "server-key.pem"),
		ClientCertFile: filepath.Join(outDir, "client.pem"),
		ClientKeyFile:  filepath.Join(outDir, "client-key.pem"),
	}
	if err := writePEM(out.CAFile, "CERTIFICATE", ca.cert.Raw); err != nil {
		return DevCerts{}, err
	}
	if err := writeKeyPair(out.ServerCertFile, out.ServerKeyFile, server); err != nil {
		return DevCerts{}, err
	}
	if err := writeKeyPair(out.ClientCertFile, out.ClientKeyFile, client); err != nil {
		return DevCerts{}, err
	}
	return out, nil
}

// issue signs tmpl with parent, or self-signs it when parent is nil.
func issue(tmpl *x509.Certificate, parent *issued) (*issued, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	tmpl.SerialNumber, err = rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 127))
	if err != nil {
		return nil, fmt.Errorf("serial: %w", err)
	}

	signer, signerCert := key, tmpl
	if parent != nil {
		signer, signerCert = parent.key, parent.cert
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, signerCert, &key.PublicKey, signer)
	if err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("parse certificate: %w", err)
	}
	return &issued{cert: cert, key: key}, nil
}

func writeKeyPair(certPath, keyPath string, kp *issued) error {
	if err := writePEM(certPath, "CERTIFICATE", kp.cert.Raw); err != nil {
		return err
	}
	der, err := x509.MarshalECPrivateKey(kp.key)
	if err != nil {
		return fmt.Errorf("tlsutil: marshal key: %w", err)
	}
	return writePEM(keyPath, "EC PRIVATE KEY", der)
}

func writePEM(path, blockType string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("tlsutil: write %s: %w", path, err)
	}
	if err := pem.Encode(f, &pem.Block{Type: blockType, Bytes: data}); err != nil {
		f.Close()
		return fmt.Errorf("tlsutil: encode %s: %w", path, err)
	}
	return f.Close()
}
