package service

import "github.com/alsftd-research/datasync/internal/domain"

// SeedGenes is the curated dictionary of definitive and strong-evidence
// ALS genes. It is the fallback of last resort when the upstream gene
// table is unreachable and the store is empty, so a first run on a
// fresh database still resolves the canonical genes.
var SeedGenes = []domain.Gene{
	{Symbol: "SOD1", Name: "Superoxide dismutase 1", RiskCategory: domain.RiskDefinitive},
	{Symbol: "FUS", Name: "FUS RNA binding protein", RiskCategory: domain.RiskDefinitive},
	{Symbol: "TARDBP", Name: "TAR DNA binding protein", RiskCategory: domain.RiskDefinitive},
	{Symbol: "C9orf72", Name: "C9orf72-SMCR8 complex subunit", RiskCategory: domain.RiskDefinitive},
	{Symbol: "TBK1", Name: "TANK binding kinase 1", RiskCategory: domain.RiskDefinitive},
	{Symbol: "OPTN", Name: "Optineurin", RiskCategory: domain.RiskDefinitive},
	{Symbol: "VCP", Name: "Valosin containing protein", RiskCategory: domain.RiskDefinitive},
	{Symbol: "UBQLN2", Name: "Ubiquilin 2", RiskCategory: domain.RiskDefinitive},
	{Symbol: "PFN1", Name: "Profilin 1", RiskCategory: domain.RiskDefinitive},
	{Symbol: "HNRNPA1", Name: "Heterogeneous nuclear ribonucleoprotein A1", RiskCategory: domain.RiskDefinitive},
	{Symbol: "KIF5A", Name: "Kinesin family member 5A", RiskCategory: domain.RiskDefinitive},
	{Symbol: "NEK1", Name: "NIMA related kinase 1", RiskCategory: domain.RiskDefinitive},
	{Symbol: "VAPB", Name: "VAMP associated protein B and C", RiskCategory: domain.RiskDefinitive},
	{Symbol: "CHCHD10", Name: "Coiled-coil-helix-coiled-coil-helix domain containing 10", RiskCategory: domain.RiskDefinitive},
	{Symbol: "ANXA11", Name: "Annexin A11", RiskCategory: domain.RiskDefinitive},
	{Symbol: "EPHA4", Name: "EPH receptor A4", RiskCategory: domain.RiskDefinitive},
	{Symbol: "UNC13A", Name: "Unc-13 homolog A", RiskCategory: domain.RiskDefinitive},
	{Symbol: "CCNF", Name: "Cyclin F", RiskCategory: domain.RiskStrong},
	{Symbol: "HFE", Name: "Homeostatic iron regulator", RiskCategory: domain.RiskStrong},
	{Symbol: "NIPA1", Name: "NIPA magnesium transporter 1", RiskCategory: domain.RiskStrong},
	{Symbol: "ATXN1", Name: "Ataxin 1", RiskCategory: domain.RiskStrong},
	{Symbol: "TUBA4A", Name: "Tubulin alpha 4a", RiskCategory: domain.RiskStrong},
	{Symbol: "CFAP410", Name: "Cilia and flagella associated protein 410", RiskCategory: domain.RiskStrong},
	{Symbol: "SCFD1", Name: "Sec1 family domain containing 1", RiskCategory: domain.RiskStrong},
}
