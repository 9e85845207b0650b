package analysis

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

var disabledTLSRe = regexp.MustCompile(`\b(ssl|tls)\s*=\s*false\b`)

// EvaluateTransportSecurity scans the root configuration for insecure
// transport signals: plain HTTP URLs, explicitly disabled SSL/TLS, and S3
// buckets without a force-TLS policy signal anywhere in the module.
func EvaluateTransportSecurity(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	var findings []types.Finding
	for _, e := range snap.Entries {
		if e.IsDir || strings.Contains(e.RelPath, "/") || !strings.HasSuffix(e.RelPath, ".tf") {
			continue
		}
		if e.ReadErr != "" {
			findings = append(findings, fail("S3", fmt.Sprintf("%s cannot be read: %s", e.RelPath, e.ReadErr), e.RelPath))
			continue
		}
		if strings.Contains(e.Text, "http://") {
			findings = append(findings, fail("S3", fmt.Sprintf("%s references a plain http:// URL, use HTTPS", e.RelPath), e.RelPath))
		}
		if m := disabledTLSRe.FindString(e.Text); m != "" {
			findings = append(findings, fail("S3", fmt.Sprintf("%s disables transport security with %q", e.RelPath, normalizeSpace(m)), e.RelPath))
		}
	}
	if snap.HasResourceType("aws_s3_bucket") {
		config := snap.ConfigText()
		if !strings.Contains(config, "SecureTransport") && !strings.Contains(config, "force_ssl") {
			findings = append(findings, fail("S3", "S3 buckets have no policy forcing TLS, add a SecureTransport condition", "main.tf"))
		}
	}
	if len(findings) == 0 {
		findings = append(findings, pass("S3", "no insecure transport configuration detected"))
	}
	return findings
}
