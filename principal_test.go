package tradedeck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrincipalUserID(t *testing.T) {
	testCases := []struct {
		name       string
		principal  Principal
		expectedID string
		expectErr  bool
	}{
		{
			name:       "id field",
			principal:  Principal(`{"id":"u-1","email":"a@b.c"}`),
			expectedID: "u-1",
		},
		{
			name:       "underscore id field",
			principal:  Principal(`{"_id":"u-2"}`),
			expectedID: "u-2",
		},
		{
			name:       "userId field",
			principal:  Principal(`{"userId":"u-3"}`),
			expectedID: "u-3",
		},
		{
			name:       "id wins over the others",
			principal:  Principal(`{"id":"u-1","_id":"u-2","userId":"u-3"}`),
			expectedID: "u-1",
		},
		{
			name:       "underscore id wins over userId",
			principal:  Principal(`{"_id":"u-2","userId":"u-3"}`),
			expectedID: "u-2",
		},
		{
			name:      "no identity fields",
			principal: Principal(`{"email":"a@b.c"}`),
			expectErr: true,
		},
		{
			name:      "empty principal",
			principal: nil,
			expectErr: true,
		},
		{
			name:      "malformed principal",
			principal: Principal(`not json`),
			expectErr: true,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			id, err := testCase.principal.UserID()
			if testCase.expectErr {
				require.Error(t, err)
				require.IsType(t, &ErrMissingUserIdentity{}, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, testCase.expectedID, id)
		})
	}
}
