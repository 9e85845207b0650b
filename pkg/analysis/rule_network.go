package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// EvaluateNetworkConfiguration checks network resources for the baseline
// posture: VPCs resolve DNS, subnets do not hand out public IPs on launch,
// and network ACLs do not open rules to the whole internet.
func EvaluateNetworkConfiguration(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	var findings []types.Finding
	relevant := false

	for _, r := range snap.ResourcesOfType("aws_vpc") {
		relevant = true
		for _, attr := range []string{"enable_dns_hostnames", "enable_dns_support"} {
			if v, ok := attrLiteral(r, attr); !ok || v == "false" {
				findings = append(findings, fail("S6",
					fmt.Sprintf("%s does not enable %s", resourceAddress(r), attr), r.File))
			}
		}
	}

	for _, r := range snap.ResourcesOfType("aws_subnet") {
		relevant = true
		if v, ok := attrLiteral(r, "map_public_ip_on_launch"); ok && v == "true" {
			findings = append(findings, fail("S6",
				fmt.Sprintf("%s assigns public IPs on launch", resourceAddress(r)), r.File))
		}
	}

	for _, resourceType := range []string{"aws_network_acl", "aws_network_acl_rule"} {
		for _, r := range snap.ResourcesOfType(resourceType) {
			relevant = true
			for _, v := range r.Attributes {
				if strings.Contains(v, "0.0.0.0/0") {
					findings = append(findings, fail("S6",
						fmt.Sprintf("%s opens a rule to 0.0.0.0/0", resourceAddress(r)), r.File))
					break
				}
			}
		}
	}

	if len(findings) == 0 {
		if !relevant {
			return []types.Finding{pass("S6", "no network resources to check")}
		}
		findings = append(findings, pass("S6", "network resources follow the baseline posture"))
	}
	return findings
}
