package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Graph records skill/field co-occurrence per analyzed CV. The graph is an
// optional analytics surface; analysis succeeds without it.
type Graph struct {
	driver neo4j.DriverWithContext
}

func New(ctx context.Context, uri, username, password string) (*Graph, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}
	return &Graph{driver: driver}, nil
}

func (g *Graph) Close(ctx context.Context) error {
	return g.driver.Close(ctx)
}

func (g *Graph) RecordAnalysis(ctx context.Context, cvID, careerField string, skills []string) error {
	const query = `
MERGE (cv:CV {id: $cvID})
MERGE (field:Field {name: $careerField})
MERGE (cv)-[:IN_FIELD]->(field)
WITH cv, field
UNWIND $skills AS skillName
MERGE (skill:Skill {name: skillName})
MERGE (cv)-[:MENTIONS]->(skill)
MERGE (skill)-[r:SEEN_IN]->(field)
ON CREATE SET r.count = 1
ON MATCH SET r.count = r.count + 1
`
	_, err := neo4j.ExecuteQuery(ctx, g.driver, query,
		map[string]any{
			"cvID":        cvID,
			"careerField": careerField,
			"skills":      skills,
		},
		neo4j.EagerResultTransformer,
	)
	if err != nil {
		return fmt.Errorf("record analysis in graph: %w", err)
	}
	return nil
}
